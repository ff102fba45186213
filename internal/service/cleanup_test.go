package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sessionkeeper/internal/mocks"
	"github.com/dtroode/sessionkeeper/internal/model"
	"github.com/dtroode/sessionkeeper/internal/testutil"
)

func TestCleanup_RunOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.createUser(t, "a@b.c", model.RoleUser)

	require.NoError(t, f.store.Create(ctx, model.RefreshToken{Token: "stale", UserID: u.ID, ExpiresAt: time.Now().Add(-48 * time.Hour)}))
	live, err := f.refresh.Create(ctx, u.ID)
	require.NoError(t, err)

	NewCleanup(f.refresh, time.Hour, 24*time.Hour, testutil.MakeNoopLogger()).RunOnce(ctx)

	_, err = f.store.GetByToken(ctx, "stale")
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = f.refresh.Verify(ctx, live)
	require.NoError(t, err)
}

func TestCleanup_Run(t *testing.T) {
	store := mocks.NewRefreshTokenStore(t)
	swept := make(chan struct{}, 1)
	store.On("DeleteExpired", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil).
		Run(func(mock.Arguments) {
			select {
			case swept <- struct{}{}:
			default:
			}
		})

	lg := testutil.MakeNoopLogger()
	refresh := NewRefreshTokens(store, mocks.NewUserStore(t), time.Hour, lg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewCleanup(refresh, 5*time.Millisecond, time.Hour, lg).Run(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not run")
	}
	cancel()
	<-done
}

func TestCleanup_Run_Disabled(t *testing.T) {
	lg := testutil.MakeNoopLogger()
	store := mocks.NewRefreshTokenStore(t)
	refresh := NewRefreshTokens(store, mocks.NewUserStore(t), time.Hour, lg)

	done := make(chan struct{})
	go func() {
		NewCleanup(refresh, 0, time.Hour, lg).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled cleanup should return immediately")
	}
	assert.Empty(t, store.Calls)
}
