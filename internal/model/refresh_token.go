package model

import (
	"context"
	"time"
)

// RefreshTokenStore persists opaque refresh token rows.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	// Rotate revokes the live token old owned by next.UserID and stores next,
	// both or neither. ErrNotFound is returned when no live row matched and
	// ErrConflict when next.Token already exists.
	Rotate(ctx context.Context, old string, next RefreshToken, now time.Time) error
	Revoke(ctx context.Context, token string) error
	RevokeAllByUser(ctx context.Context, userID int64) (int64, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// RefreshToken is a stored refresh token. Rows are revoked, never deleted by
// the session paths.
type RefreshToken struct {
	ID        int64
	Token     string
	UserID    int64
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// RefreshTokenTTL is the default lifetime of a refresh token.
const RefreshTokenTTL = 7 * 24 * time.Hour

// TokenPair is an access token with its companion refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
