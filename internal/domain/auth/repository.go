package auth

import (
	"context"
	"time"
)

type RefreshToken struct {
	ID         string
	EmployeeID string
	Token      string
	IPAddress  string
	UserAgent  string
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

// RefreshTokenRepository - interface for the refresh_tokens table
type RefreshTokenRepository interface {
	Create(ctx context.Context, token RefreshToken) error
	// Get returns ErrRefreshTokenRevoked for revoked tokens and
	// ErrInvalidToken for unknown ones.
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForEmployee(ctx context.Context, employeeID string) error
}
