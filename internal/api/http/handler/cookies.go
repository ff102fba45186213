package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/api/http/middleware"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// RefreshTokenCookie is the cookie the refresh token is delivered in.
const RefreshTokenCookie = "refreshToken"

// Cookies writes session cookies. Secure is set in production only.
type Cookies struct {
	secure bool
}

func NewCookies(secure bool) *Cookies {
	return &Cookies{secure: secure}
}

// SetSession writes both tokens with max-ages matching their lifetimes.
func (k *Cookies) SetSession(c echo.Context, pair model.TokenPair, accessTTL, refreshTTL time.Duration) {
	c.SetCookie(k.cookie(middleware.AccessTokenCookie, pair.AccessToken, int(accessTTL.Seconds())))
	c.SetCookie(k.cookie(RefreshTokenCookie, pair.RefreshToken, int(refreshTTL.Seconds())))
}

// ClearRefresh expires the refresh token cookie only.
func (k *Cookies) ClearRefresh(c echo.Context) {
	c.SetCookie(k.cookie(RefreshTokenCookie, "", -1))
}

// Clear expires both session cookies.
func (k *Cookies) Clear(c echo.Context) {
	c.SetCookie(k.cookie(middleware.AccessTokenCookie, "", -1))
	c.SetCookie(k.cookie(RefreshTokenCookie, "", -1))
}

func (k *Cookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   k.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
