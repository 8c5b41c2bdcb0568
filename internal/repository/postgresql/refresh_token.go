package postgresql

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (
			id, employee_id, token, ip_address, user_agent, expires_at, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW()
		)
	`

	_, err := q.Exec(ctx, query,
		token.EmployeeID, token.Token, token.IPAddress, token.UserAgent, token.ExpiresAt,
	)
	return err
}

func (r *refreshTokenRepositoryImpl) Get(ctx context.Context, token string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, token, ip_address, user_agent, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var stored auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&stored.ID, &stored.EmployeeID, &stored.Token, &stored.IPAddress,
		&stored.UserAgent, &stored.ExpiresAt, &stored.RevokedAt, &stored.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, err
	}
	if stored.RevokedAt != nil {
		return auth.RefreshToken{}, auth.ErrRefreshTokenRevoked
	}
	return stored, nil
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, token)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return auth.ErrInvalidToken
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) RevokeAllForEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE employee_id = $1 AND revoked_at IS NULL
	`

	_, err := q.Exec(ctx, query, employeeID)
	return err
}
