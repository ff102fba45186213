package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/api/http/response"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

func handleError(c echo.Context, logger *logger.Logger, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidRegistration),
		errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrPasswordUnchanged):
		return response.Error(c, http.StatusBadRequest, rootMessage(err))
	case errors.Is(err, model.ErrEmailTaken):
		return response.Error(c, http.StatusConflict, model.ErrEmailTaken.Error())
	case errors.Is(err, model.ErrTokenExpired):
		return response.Expired(c, http.StatusUnauthorized)
	case errors.Is(err, model.ErrRefreshRejected),
		errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrAuthenticationRequired):
		return response.Error(c, http.StatusUnauthorized, rootMessage(err))
	case errors.Is(err, model.ErrForbidden):
		return response.Error(c, http.StatusForbidden, model.ErrForbidden.Error())
	case errors.Is(err, model.ErrNotFound):
		return response.Error(c, http.StatusNotFound, "user not found")
	case errors.Is(err, model.ErrStoreUnavailable):
		logger.Error("HTTP handler: store unavailable",
			"path", c.Request().URL.Path,
			"error", err.Error())
		return response.Error(c, http.StatusServiceUnavailable, "service unavailable")
	default:
		logger.Error("HTTP handler: unhandled error",
			"path", c.Request().URL.Path,
			"error", err.Error())
		return response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// rootMessage returns the message of the taxonomy sentinel err wraps, so
// causes never leak into responses.
func rootMessage(err error) string {
	for _, sentinel := range []error{
		model.ErrInvalidRegistration,
		model.ErrInvalidCredentials,
		model.ErrPasswordUnchanged,
		model.ErrRefreshRejected,
		model.ErrTokenInvalid,
		model.ErrAuthenticationRequired,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
