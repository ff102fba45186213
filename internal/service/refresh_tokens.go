package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Rejection reasons, logged only. Callers always see model.ErrRefreshRejected.
const (
	reasonNotFound       = "not_found"
	reasonRevoked        = "revoked"
	reasonExpired        = "expired"
	reasonSubjectMissing = "subject_missing"
	reasonUnknown        = "unknown"
)

// RefreshTokens applies expiry, revocation and subject lookup rules on top
// of a RefreshTokenStore.
type RefreshTokens struct {
	store    model.RefreshTokenStore
	users    model.UserStore
	ttl      time.Duration
	logger   *logger.Logger
	now      func() time.Time
	newValue func() string
}

// NewRefreshTokens creates the refresh token service. A non-positive ttl
// falls back to model.RefreshTokenTTL.
func NewRefreshTokens(store model.RefreshTokenStore, users model.UserStore, ttl time.Duration, logger *logger.Logger) *RefreshTokens {
	if ttl <= 0 {
		ttl = model.RefreshTokenTTL
	}
	return &RefreshTokens{
		store:    store,
		users:    users,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		newValue: uuid.NewString,
	}
}

// TTL returns the lifetime of issued refresh tokens.
func (s *RefreshTokens) TTL() time.Duration {
	return s.ttl
}

// Create stores a new random refresh token for the subject and returns its value.
func (s *RefreshTokens) Create(ctx context.Context, subjectID int64) (string, error) {
	// One retry on collision; a second collision means the generator is broken.
	for attempt := 0; attempt < 2; attempt++ {
		value := s.newValue()
		err := s.store.Create(ctx, model.RefreshToken{
			Token:     value,
			UserID:    subjectID,
			ExpiresAt: s.now().Add(s.ttl),
		})
		if err == nil {
			return value, nil
		}
		if errors.Is(err, model.ErrConflict) {
			s.logger.Warn("Refresh token service: generated token collided",
				"user_id", subjectID,
				"attempt", attempt+1)
			continue
		}
		return "", s.storeError("create", subjectID, err)
	}
	return "", fmt.Errorf("create refresh token: %w", model.ErrConflict)
}

// Verify returns the current subject owning a live token.
func (s *RefreshTokens) Verify(ctx context.Context, token string) (model.Subject, error) {
	rt, err := s.store.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Subject{}, s.reject("verify", 0, reasonNotFound)
		}
		return model.Subject{}, s.storeError("verify", 0, err)
	}

	if rt.Revoked {
		return model.Subject{}, s.reject("verify", rt.UserID, reasonRevoked)
	}
	if !rt.ExpiresAt.After(s.now()) {
		return model.Subject{}, s.reject("verify", rt.UserID, reasonExpired)
	}

	return s.subject(ctx, "verify", rt.UserID)
}

// Rotate replaces the live token old, owned by subjectID, with a new one and
// returns the new value. The old token is revoked only if the new one was
// stored, so a store failure leaves it usable for a retry. Of several
// concurrent calls with the same token at most one succeeds.
func (s *RefreshTokens) Rotate(ctx context.Context, old string, subjectID int64) (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		value := s.newValue()
		err := s.store.Rotate(ctx, old, model.RefreshToken{
			Token:     value,
			UserID:    subjectID,
			ExpiresAt: s.now().Add(s.ttl),
		}, s.now())
		switch {
		case err == nil:
			return value, nil
		case errors.Is(err, model.ErrConflict):
			s.logger.Warn("Refresh token service: generated token collided",
				"user_id", subjectID,
				"attempt", attempt+1)
		case errors.Is(err, model.ErrNotFound):
			reason, owner := s.classify(ctx, old)
			return "", s.reject("rotate", owner, reason)
		default:
			return "", s.storeError("rotate", subjectID, err)
		}
	}
	return "", fmt.Errorf("rotate refresh token: %w", model.ErrConflict)
}

// Revoke marks the token revoked. Unknown tokens are not an error.
func (s *RefreshTokens) Revoke(ctx context.Context, token string) error {
	if err := s.store.Revoke(ctx, token); err != nil {
		return s.storeError("revoke", 0, err)
	}
	return nil
}

// RevokeAllForSubject revokes every token owned by the subject.
func (s *RefreshTokens) RevokeAllForSubject(ctx context.Context, subjectID int64) error {
	n, err := s.store.RevokeAllByUser(ctx, subjectID)
	if err != nil {
		return s.storeError("revoke_all", subjectID, err)
	}

	s.logger.Info("Refresh token service: revoked all sessions",
		"user_id", subjectID,
		"revoked", n)
	return nil
}

// DeleteExpired removes rows that expired before now minus retention.
func (s *RefreshTokens) DeleteExpired(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.store.DeleteExpired(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, s.storeError("delete_expired", 0, err)
	}
	return n, nil
}

func (s *RefreshTokens) subject(ctx context.Context, op string, userID int64) (model.Subject, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Subject{}, s.reject(op, userID, reasonSubjectMissing)
		}
		return model.Subject{}, s.storeError(op, userID, err)
	}
	return user.Subject(), nil
}

// classify explains a failed Rotate for the audit log.
func (s *RefreshTokens) classify(ctx context.Context, token string) (string, int64) {
	rt, err := s.store.GetByToken(ctx, token)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return reasonNotFound, 0
	case err != nil:
		return reasonUnknown, 0
	case rt.Revoked:
		return reasonRevoked, rt.UserID
	case !rt.ExpiresAt.After(s.now()):
		return reasonExpired, rt.UserID
	default:
		return reasonUnknown, rt.UserID
	}
}

func (s *RefreshTokens) reject(op string, userID int64, reason string) error {
	s.logger.Info("Refresh token service: token rejected",
		"operation", op,
		"user_id", userID,
		"reason", reason)
	return model.ErrRefreshRejected
}

func (s *RefreshTokens) storeError(op string, userID int64, err error) error {
	s.logger.Error("Refresh token service: store failure",
		"operation", op,
		"user_id", userID,
		"error", err.Error())
	return fmt.Errorf("%w: %s: %w", model.ErrStoreUnavailable, op, err)
}
