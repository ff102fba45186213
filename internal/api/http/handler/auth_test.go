package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/sessionkeeper/internal/api/http/context"
	"github.com/dtroode/sessionkeeper/internal/mocks"
	"github.com/dtroode/sessionkeeper/internal/model"
	"github.com/dtroode/sessionkeeper/internal/testutil"
)

var (
	testSubject = model.Subject{ID: 1, Email: "a@b.c", Role: model.RoleUser}
	testPair    = model.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
)

type authFixture struct {
	account *mocks.AccountService
	session *mocks.SessionService
	cm      *httpctx.Manager
	handler *Auth
}

func newAuthFixture(t *testing.T, secure bool) authFixture {
	t.Helper()
	account := mocks.NewAccountService(t)
	session := mocks.NewSessionService(t)
	cm := httpctx.NewManager()
	return authFixture{
		account: account,
		session: session,
		cm:      cm,
		handler: NewAuth(account, session, cm, NewCookies(secure), testutil.MakeNoopLogger()),
	}
}

func (f authFixture) expectTTLs() {
	f.session.On("AccessTTL").Return(15 * time.Minute).Once()
	f.session.On("RefreshTTL").Return(7 * 24 * time.Hour).Once()
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, true)
	f.account.On("Register", mock.Anything, "a@b.c", "secret", model.RoleAdmin).Return(testSubject, testPair, nil).Once()
	f.expectTTLs()

	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"email":"a@b.c","password":"secret","role":"admin"}`)
	require.NoError(t, f.handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"accessToken":"access","user":{"id":1,"email":"a@b.c","role":"user"}}`, rec.Body.String())

	cookies := cookiesByName(rec)
	access := cookies["accessToken"]
	require.NotNil(t, access)
	assert.Equal(t, "access", access.Value)
	assert.Equal(t, 900, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, "/", access.Path)

	refresh := cookies["refreshToken"]
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh", refresh.Value)
	assert.Equal(t, 604800, refresh.MaxAge)
}

func TestAuth_Register_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "email taken",
			err:        model.ErrEmailTaken,
			wantStatus: http.StatusConflict,
			wantBody:   `{"message":"user with this email already exists"}`,
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: too long", model.ErrInvalidRegistration),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"email and password are required"}`,
		},
		{
			name:       "store down",
			err:        fmt.Errorf("%w: create user: boom", model.ErrStoreUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"message":"service unavailable"}`,
		},
		{
			name:       "unexpected",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newAuthFixture(t, false)
			f.account.On("Register", mock.Anything, "a@b.c", "secret", model.Role("")).
				Return(model.Subject{}, model.TokenPair{}, tt.err).Once()

			c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"email":"a@b.c","password":"secret"}`)
			require.NoError(t, f.handler.Register(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAuth_Register_BadBody(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t, false)
	c, rec := newJSONContext(http.MethodPost, "/auth/register", `{"email":`)
	require.NoError(t, f.handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.account.On("Login", mock.Anything, "a@b.c", "secret").Return(testSubject, testPair, nil).Once()
		f.expectTTLs()

		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"secret"}`)
		require.NoError(t, f.handler.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := cookiesByName(rec)
		require.Contains(t, cookies, "accessToken")
		assert.False(t, cookies["accessToken"].Secure)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.account.On("Login", mock.Anything, "a@b.c", "nope").
			Return(model.Subject{}, model.TokenPair{}, model.ErrInvalidCredentials).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"nope"}`)
		require.NoError(t, f.handler.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"invalid email or password"}`, rec.Body.String())
	})
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")
		require.NoError(t, f.handler.Refresh(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"refresh token required"}`, rec.Body.String())
	})

	t.Run("cookie rotated", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.session.On("Rotate", mock.Anything, "old").Return(testPair, testSubject, nil).Once()
		f.expectTTLs()

		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")
		c.Request().AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "old"})
		require.NoError(t, f.handler.Refresh(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "refresh", cookiesByName(rec)["refreshToken"].Value)
	})

	t.Run("body token rotated", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.session.On("Rotate", mock.Anything, "from-body").Return(testPair, testSubject, nil).Once()
		f.expectTTLs()

		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refreshToken":"from-body"}`)
		require.NoError(t, f.handler.Refresh(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejected clears cookie", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.session.On("Rotate", mock.Anything, "spent").
			Return(model.TokenPair{}, model.Subject{}, model.ErrRefreshRejected).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")
		c.Request().AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "spent"})
		require.NoError(t, f.handler.Refresh(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"invalid refresh token"}`, rec.Body.String())
		cleared := cookiesByName(rec)["refreshToken"]
		require.NotNil(t, cleared)
		assert.Equal(t, -1, cleared.MaxAge)
	})

	t.Run("store down keeps cookie", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.session.On("Rotate", mock.Anything, "tok").
			Return(model.TokenPair{}, model.Subject{}, fmt.Errorf("%w: consume: boom", model.ErrStoreUnavailable)).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", "")
		c.Request().AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "tok"})
		require.NoError(t, f.handler.Refresh(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	t.Run("revokes and clears", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.session.On("End", mock.Anything, "tok").Return(nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
		c.Request().AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "tok"})
		require.NoError(t, f.handler.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := cookiesByName(rec)
		assert.Equal(t, -1, cookies["accessToken"].MaxAge)
		assert.Equal(t, -1, cookies["refreshToken"].MaxAge)
	})

	t.Run("revoke failure still clears", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.session.On("End", mock.Anything, "tok").Return(assert.AnError).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
		c.Request().AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "tok"})
		require.NoError(t, f.handler.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, rec.Result().Cookies(), 2)
	})

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)

		c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
		require.NoError(t, f.handler.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		f.session.AssertNotCalled(t, "End", mock.Anything, mock.Anything)
	})
}

func TestAuth_AuthenticatedRoutes(t *testing.T) {
	t.Parallel()

	t.Run("me", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		current := model.Subject{ID: 1, Email: "a@b.c", Role: model.RoleAdmin}
		f.account.On("Me", mock.Anything, int64(1)).Return(current, nil).Once()

		c, rec := newJSONContext(http.MethodGet, "/auth/me", "")
		c.SetRequest(c.Request().WithContext(f.cm.SetSubjectToContext(c.Request().Context(), testSubject)))
		require.NoError(t, f.handler.Me(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"email":"a@b.c","role":"admin"}`, rec.Body.String())
	})

	t.Run("me without identity", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)

		c, rec := newJSONContext(http.MethodGet, "/auth/me", "")
		require.NoError(t, f.handler.Me(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("logout all", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.session.On("RevokeAllForSubject", mock.Anything, int64(1)).Return(nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/logout-all", "")
		c.SetRequest(c.Request().WithContext(f.cm.SetSubjectToContext(c.Request().Context(), testSubject)))
		require.NoError(t, f.handler.LogoutAll(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, rec.Result().Cookies(), 2)
	})

	t.Run("change password", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.account.On("ChangePassword", mock.Anything, int64(1), "fresh").Return(nil).Once()

		c, rec := newJSONContext(http.MethodPut, "/auth/password", `{"password":"fresh"}`)
		c.SetRequest(c.Request().WithContext(f.cm.SetSubjectToContext(c.Request().Context(), testSubject)))
		require.NoError(t, f.handler.ChangePassword(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, -1, cookiesByName(rec)["accessToken"].MaxAge)
	})

	t.Run("change password unchanged", func(t *testing.T) {
		t.Parallel()

		f := newAuthFixture(t, false)
		f.account.On("ChangePassword", mock.Anything, int64(1), "same").Return(model.ErrPasswordUnchanged).Once()

		c, rec := newJSONContext(http.MethodPut, "/auth/password", `{"password":"same"}`)
		c.SetRequest(c.Request().WithContext(f.cm.SetSubjectToContext(c.Request().Context(), testSubject)))
		require.NoError(t, f.handler.ChangePassword(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}
