package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/api/http/response"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Admin serves the /admin routes.
type Admin struct {
	session        SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAdmin(session SessionService, contextManager model.ContextManager, logger *logger.Logger) *Admin {
	return &Admin{session: session, contextManager: contextManager, logger: logger}
}

// RevokeSessions ends every session of the user in the path.
func (h *Admin) RevokeSessions(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return response.Error(c, http.StatusBadRequest, "invalid user id")
	}

	if err := h.session.RevokeAllForSubject(c.Request().Context(), userID); err != nil {
		return handleError(c, h.logger, err)
	}

	admin, _ := h.contextManager.GetSubjectFromContext(c.Request().Context())
	h.logger.Info("HTTP admin handler: sessions revoked",
		"user_id", userID,
		"admin_id", admin.ID)

	return c.JSON(http.StatusOK, response.Message{Message: "sessions revoked"})
}
