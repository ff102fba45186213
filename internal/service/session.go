package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Session issues, rotates and ends access/refresh token pairs.
type Session struct {
	manager model.TokenManager
	refresh *RefreshTokens
	logger  *logger.Logger
}

func NewSession(manager model.TokenManager, refresh *RefreshTokens, logger *logger.Logger) *Session {
	return &Session{manager: manager, refresh: refresh, logger: logger}
}

// Issue mints a new pair for the subject. Either both tokens are returned or
// neither is.
func (s *Session) Issue(ctx context.Context, subject model.Subject) (model.TokenPair, error) {
	access, err := s.manager.IssueAccessToken(subject)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.refresh.Create(ctx, subject.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	s.logger.Debug("Session service: session issued",
		"user_id", subject.ID)

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Rotate spends the presented refresh token and issues a new pair for its
// current subject. A token can be rotated at most once; if any step fails the
// presented token stays valid.
func (s *Session) Rotate(ctx context.Context, presentedRefresh string) (model.TokenPair, model.Subject, error) {
	subject, err := s.refresh.Verify(ctx, presentedRefresh)
	if err != nil {
		return model.TokenPair{}, model.Subject{}, err
	}

	access, err := s.manager.IssueAccessToken(subject)
	if err != nil {
		return model.TokenPair{}, model.Subject{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.refresh.Rotate(ctx, presentedRefresh, subject.ID)
	if err != nil {
		return model.TokenPair{}, model.Subject{}, err
	}

	s.logger.Info("Session service: session rotated",
		"user_id", subject.ID)

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, subject, nil
}

// End revokes the refresh token of a session (logout).
func (s *Session) End(ctx context.Context, refreshToken string) error {
	if err := s.refresh.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// RevokeAllForSubject ends every session of the subject.
func (s *Session) RevokeAllForSubject(ctx context.Context, subjectID int64) error {
	return s.refresh.RevokeAllForSubject(ctx, subjectID)
}

// Authenticate verifies an access token.
func (s *Session) Authenticate(_ context.Context, accessToken string) (model.Subject, error) {
	return s.manager.VerifyAccessToken(accessToken)
}

// AccessTTL is the lifetime of issued access tokens.
func (s *Session) AccessTTL() time.Duration {
	return s.manager.TTL()
}

// RefreshTTL is the lifetime of issued refresh tokens.
func (s *Session) RefreshTTL() time.Duration {
	return s.refresh.TTL()
}
