// Package memory provides process-local stores used when no database is
// configured and as test doubles.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/sessionkeeper/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenStore)(nil)

// RefreshTokenStore keeps refresh token rows in a map keyed by token value.
type RefreshTokenStore struct {
	mu     sync.Mutex
	rows   map[string]model.RefreshToken
	nextID int64
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{rows: make(map[string]model.RefreshToken)}
}

// Ping always succeeds; it lets the store stand in for a database in
// health checks.
func (s *RefreshTokenStore) Ping(context.Context) error {
	return nil
}

func (s *RefreshTokenStore) Create(_ context.Context, token model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[token.Token]; ok {
		return model.ErrConflict
	}
	s.nextID++
	token.ID = s.nextID
	token.Revoked = false
	token.CreatedAt = time.Now()
	s.rows[token.Token] = token
	return nil
}

func (s *RefreshTokenStore) GetByToken(_ context.Context, token string) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.rows[token]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return rt, nil
}

func (s *RefreshTokenStore) Rotate(_ context.Context, old string, next model.RefreshToken, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.rows[old]
	if !ok || rt.UserID != next.UserID || rt.Revoked || !rt.ExpiresAt.After(now) {
		return model.ErrNotFound
	}
	if _, ok := s.rows[next.Token]; ok {
		return model.ErrConflict
	}

	rt.Revoked = true
	s.rows[old] = rt

	s.nextID++
	next.ID = s.nextID
	next.Revoked = false
	next.CreatedAt = now
	s.rows[next.Token] = next
	return nil
}

func (s *RefreshTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rt, ok := s.rows[token]; ok {
		rt.Revoked = true
		s.rows[token] = rt
	}
	return nil
}

func (s *RefreshTokenStore) RevokeAllByUser(_ context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key, rt := range s.rows {
		if rt.UserID == userID && !rt.Revoked {
			rt.Revoked = true
			s.rows[key] = rt
			n++
		}
	}
	return n, nil
}

func (s *RefreshTokenStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key, rt := range s.rows {
		if rt.ExpiresAt.Before(before) {
			delete(s.rows, key)
			n++
		}
	}
	return n, nil
}
