package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/sessionkeeper/internal/model"
	"github.com/dtroode/sessionkeeper/internal/password"
	"github.com/dtroode/sessionkeeper/internal/repository/memory"
	"github.com/dtroode/sessionkeeper/internal/testutil"
	"github.com/dtroode/sessionkeeper/internal/token"
)

type fixture struct {
	users   *memory.UserStore
	store   *memory.RefreshTokenStore
	jwt     *token.JWT
	refresh *RefreshTokens
	session *Session
	account *Account
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	users := memory.NewUserStore()
	store := memory.NewRefreshTokenStore()
	jwt, err := token.NewJWT("test-secret", 15*time.Minute)
	require.NoError(t, err)

	lg := testutil.MakeNoopLogger()
	refresh := NewRefreshTokens(store, users, model.RefreshTokenTTL, lg)
	session := NewSession(jwt, refresh, lg)
	account := NewAccount(users, password.NewBcrypt(bcrypt.MinCost), session, false, lg)

	return fixture{
		users:   users,
		store:   store,
		jwt:     jwt,
		refresh: refresh,
		session: session,
		account: account,
	}
}

func (f fixture) createUser(t *testing.T, email string, role model.Role) model.Subject {
	t.Helper()
	u, err := f.users.Create(context.Background(), model.User{Email: email, PasswordHash: []byte("x"), Role: role})
	require.NoError(t, err)
	return u.Subject()
}
