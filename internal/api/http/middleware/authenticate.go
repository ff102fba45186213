package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/api/http/response"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// AccessTokenCookie is the cookie the access token is delivered in.
const AccessTokenCookie = "accessToken"

// IdentityKey is the echo context key holding the authenticated subject.
const IdentityKey = "identity"

// Authenticator resolves the subject behind an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Subject, error)
}

// Authenticate validates access tokens and attaches the subject to the request.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle reads the access token from the cookie, falling back to the
// Authorization bearer header.
func (m *Authenticate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c.Request())
		if token == "" {
			return response.Error(c, http.StatusUnauthorized, model.ErrAuthenticationRequired.Error())
		}

		req := c.Request()
		subject, err := m.authenticator.Authenticate(req.Context(), token)
		if err != nil {
			if errors.Is(err, model.ErrTokenExpired) {
				return response.Expired(c, http.StatusUnauthorized)
			}
			m.logger.Debug("HTTP authenticate: token rejected",
				"path", req.URL.Path,
				"error", err.Error())
			return response.Error(c, http.StatusUnauthorized, model.ErrTokenInvalid.Error())
		}

		c.Set(IdentityKey, subject)
		c.SetRequest(req.WithContext(m.contextManager.SetSubjectToContext(req.Context(), subject)))

		return next(c)
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	scheme, token, ok := strings.Cut(r.Header.Get(echo.HeaderAuthorization), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
