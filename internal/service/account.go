package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Account registers and logs in users and changes their passwords. It hands
// out sessions through Session.
type Account struct {
	users            model.UserStore
	hasher           model.PasswordHasher
	session          *Session
	allowAdminSignup bool
	logger           *logger.Logger
}

func NewAccount(
	users model.UserStore,
	hasher model.PasswordHasher,
	session *Session,
	allowAdminSignup bool,
	logger *logger.Logger,
) *Account {
	return &Account{
		users:            users,
		hasher:           hasher,
		session:          session,
		allowAdminSignup: allowAdminSignup,
		logger:           logger,
	}
}

// Register creates a user and issues its first session.
func (a *Account) Register(ctx context.Context, email, password string, role model.Role) (model.Subject, model.TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return model.Subject{}, model.TokenPair{}, model.ErrInvalidRegistration
	}

	if role != model.RoleAdmin || !a.allowAdminSignup {
		role = model.RoleUser
	}

	a.logger.Debug("Account service: registering user",
		"email", email,
		"role", role)

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return model.Subject{}, model.TokenPair{}, fmt.Errorf("%w: %w", model.ErrInvalidRegistration, err)
	}

	user, err := a.users.Create(ctx, model.User{Email: email, PasswordHash: hash, Role: role})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			a.logger.Info("Account service: email already registered",
				"email", email)
			return model.Subject{}, model.TokenPair{}, model.ErrEmailTaken
		}
		a.logger.Error("Account service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Subject{}, model.TokenPair{}, fmt.Errorf("%w: create user: %w", model.ErrStoreUnavailable, err)
	}

	pair, err := a.session.Issue(ctx, user.Subject())
	if err != nil {
		return model.Subject{}, model.TokenPair{}, err
	}

	a.logger.Info("Account service: user registered",
		"user_id", user.ID,
		"role", user.Role)

	return user.Subject(), pair, nil
}

// Login checks credentials and issues a session.
func (a *Account) Login(ctx context.Context, email, password string) (model.Subject, model.TokenPair, error) {
	email = normalizeEmail(email)

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Subject{}, model.TokenPair{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Account service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Subject{}, model.TokenPair{}, fmt.Errorf("%w: get user: %w", model.ErrStoreUnavailable, err)
	}

	if !a.hasher.Check(password, user.PasswordHash) {
		a.logger.Info("Account service: wrong password",
			"user_id", user.ID)
		return model.Subject{}, model.TokenPair{}, model.ErrInvalidCredentials
	}

	pair, err := a.session.Issue(ctx, user.Subject())
	if err != nil {
		return model.Subject{}, model.TokenPair{}, err
	}

	a.logger.Info("Account service: user logged in",
		"user_id", user.ID)

	return user.Subject(), pair, nil
}

// ChangePassword stores a new password and ends every session of the user.
func (a *Account) ChangePassword(ctx context.Context, subjectID int64, newPassword string) error {
	if newPassword == "" {
		return model.ErrInvalidRegistration
	}

	user, err := a.users.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("%w: get user: %w", model.ErrStoreUnavailable, err)
	}

	if a.hasher.Check(newPassword, user.PasswordHash) {
		return model.ErrPasswordUnchanged
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidRegistration, err)
	}

	if err := a.users.UpdatePassword(ctx, subjectID, hash); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("%w: update password: %w", model.ErrStoreUnavailable, err)
	}

	if err := a.session.RevokeAllForSubject(ctx, subjectID); err != nil {
		return err
	}

	a.logger.Info("Account service: password changed",
		"user_id", subjectID)

	return nil
}

// Me returns the current state of the user behind an identity.
func (a *Account) Me(ctx context.Context, subjectID int64) (model.Subject, error) {
	user, err := a.users.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Subject{}, model.ErrNotFound
		}
		return model.Subject{}, fmt.Errorf("%w: get user: %w", model.ErrStoreUnavailable, err)
	}
	return user.Subject(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
