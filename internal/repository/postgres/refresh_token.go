package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/sessionkeeper/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	const query = `
        INSERT INTO refresh_tokens (token, user_id, expires_at, revoked)
        VALUES ($1, $2, $3, FALSE)
    `

	if _, err := r.db.Exec(ctx, query, token.Token, token.UserID, token.ExpiresAt); err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	const query = `
        SELECT id, token, user_id, expires_at, revoked, created_at
        FROM refresh_tokens WHERE token = $1
    `
	var rt model.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return rt, nil
}

// Rotate revokes old and inserts next in one transaction. The conditional
// update only matches a live row, so of two concurrent rotations of the same
// token at most one commits.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, old string, next model.RefreshToken, now time.Time) error {
	const revokeQuery = `
        UPDATE refresh_tokens SET revoked = TRUE
        WHERE token = $1 AND user_id = $2 AND revoked = FALSE AND expires_at > $3
    `
	const insertQuery = `
        INSERT INTO refresh_tokens (token, user_id, expires_at, revoked)
        VALUES ($1, $2, $3, FALSE)
    `

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, revokeQuery, old, next.UserID, now)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrNotFound
		}
		_, err = tx.Exec(ctx, insertQuery, next.Token, next.UserID, next.ExpiresAt)
		return err
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrNotFound):
		return model.ErrNotFound
	case isUniqueViolation(err):
		return model.ErrConflict
	default:
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	const query = `
        UPDATE refresh_tokens SET revoked = TRUE
        WHERE token = $1 AND revoked = FALSE
    `
	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUser(ctx context.Context, userID int64) (int64, error) {
	const query = `
        UPDATE refresh_tokens SET revoked = TRUE
        WHERE user_id = $1 AND revoked = FALSE
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens by user: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE expires_at < $1`

	tag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
