package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/api/http/response"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Authorize gates routes by role. It must run after Authenticate.
type Authorize struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthorize(contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{contextManager: contextManager, logger: logger}
}

// RequireRole admits requests whose subject holds one of roles.
func (m *Authorize) RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := model.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := m.contextManager.GetSubjectFromContext(c.Request().Context())
			if !ok {
				return response.Error(c, http.StatusUnauthorized, model.ErrAuthenticationRequired.Error())
			}

			if !allowed.Contains(subject.Role) {
				m.logger.Info("HTTP authorize: access denied",
					"user_id", subject.ID,
					"role", subject.Role,
					"path", c.Request().URL.Path)
				return response.Error(c, http.StatusForbidden, model.ErrForbidden.Error())
			}

			return next(c)
		}
	}
}
