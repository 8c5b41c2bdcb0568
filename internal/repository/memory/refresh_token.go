package memory

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
)

type refreshTokenRepositoryImpl struct {
	store *Store
}

func NewRefreshTokenRepository(store *Store) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{store: store}
}

func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token auth.RefreshToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	token.ID = newID()
	token.CreatedAt = time.Now()
	r.store.refreshTokens[token.Token] = &token
	return nil
}

func (r *refreshTokenRepositoryImpl) Get(ctx context.Context, token string) (auth.RefreshToken, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.refreshTokens[token]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	if stored.RevokedAt != nil {
		return auth.RefreshToken{}, auth.ErrRefreshTokenRevoked
	}
	return *stored, nil
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.refreshTokens[token]
	if !ok {
		return auth.ErrInvalidToken
	}
	now := time.Now()
	stored.RevokedAt = &now
	return nil
}

func (r *refreshTokenRepositoryImpl) RevokeAllForEmployee(ctx context.Context, employeeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for _, stored := range r.store.refreshTokens {
		if stored.EmployeeID == employeeID && stored.RevokedAt == nil {
			stored.RevokedAt = &now
		}
	}
	return nil
}
