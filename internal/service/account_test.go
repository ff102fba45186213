package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/sessionkeeper/internal/mocks"
	"github.com/dtroode/sessionkeeper/internal/model"
	"github.com/dtroode/sessionkeeper/internal/password"
	"github.com/dtroode/sessionkeeper/internal/testutil"
)

func TestAccount_Register(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	subject, pair, err := f.account.Register(ctx, "  New@Example.com ", "secret", model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", subject.Email)
	assert.Equal(t, model.RoleUser, subject.Role)
	assert.NotZero(t, subject.ID)

	got, err := f.session.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, subject, got)

	stored, err := f.users.GetByID(ctx, subject.ID)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("secret"), stored.PasswordHash)

	_, _, err = f.account.Register(ctx, "new@example.com", "other", model.RoleUser)
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAccount_Register_Invalid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: " ", password: "secret"},
		{name: "empty password", email: "a@b.c", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.account.Register(ctx, tt.email, tt.password, model.RoleUser)
			require.ErrorIs(t, err, model.ErrInvalidRegistration)
		})
	}
}

func TestAccount_Register_AdminRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	subject, _, err := f.account.Register(ctx, "a@b.c", "secret", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, subject.Role)

	lg := testutil.MakeNoopLogger()
	permissive := NewAccount(f.users, password.NewBcrypt(bcrypt.MinCost), f.session, true, lg)

	subject, _, err = permissive.Register(ctx, "admin@b.c", "secret", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, subject.Role)

	subject, _, err = permissive.Register(ctx, "odd@b.c", "secret", model.Role("root"))
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, subject.Role)
}

func TestAccount_Register_StoreFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	users := mocks.NewUserStore(t)

	users.On("Create", ctx, mock.AnythingOfType("model.User")).Return(model.User{}, assert.AnError).Once()

	a := NewAccount(users, password.NewBcrypt(bcrypt.MinCost), f.session, false, testutil.MakeNoopLogger())

	_, _, err := a.Register(ctx, "a@b.c", "secret", model.RoleUser)
	require.ErrorIs(t, err, model.ErrStoreUnavailable)
}

func TestAccount_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	registered, _, err := f.account.Register(ctx, "a@b.c", "secret", model.RoleUser)
	require.NoError(t, err)

	subject, pair, err := f.account.Login(ctx, "A@B.C", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered, subject)

	_, err = f.refresh.Verify(ctx, pair.RefreshToken)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "a@b.c", password: "nope"},
		{name: "unknown email", email: "who@b.c", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.account.Login(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, model.ErrInvalidCredentials)
		})
	}
}

func TestAccount_ChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	subject, pair, err := f.account.Register(ctx, "a@b.c", "secret", model.RoleUser)
	require.NoError(t, err)

	require.ErrorIs(t, f.account.ChangePassword(ctx, subject.ID, "secret"), model.ErrPasswordUnchanged)
	require.ErrorIs(t, f.account.ChangePassword(ctx, subject.ID, ""), model.ErrInvalidRegistration)
	require.ErrorIs(t, f.account.ChangePassword(ctx, 999, "fresh"), model.ErrNotFound)

	require.NoError(t, f.account.ChangePassword(ctx, subject.ID, "fresh"))

	_, _, err = f.session.Rotate(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, model.ErrRefreshRejected)

	_, _, err = f.account.Login(ctx, "a@b.c", "secret")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, _, err = f.account.Login(ctx, "a@b.c", "fresh")
	require.NoError(t, err)
}

func TestAccount_Me(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	subject, _, err := f.account.Register(ctx, "a@b.c", "secret", model.RoleUser)
	require.NoError(t, err)

	got, err := f.account.Me(ctx, subject.ID)
	require.NoError(t, err)
	assert.Equal(t, subject, got)

	_, err = f.account.Me(ctx, 999)
	require.ErrorIs(t, err, model.ErrNotFound)
}
