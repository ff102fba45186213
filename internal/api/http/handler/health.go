package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/logger"
)

// Pinger checks the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	pinger Pinger
	logger *logger.Logger
}

func NewHealth(pinger Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

func (h *Health) Check(c echo.Context) error {
	if err := h.pinger.Ping(c.Request().Context()); err != nil {
		h.logger.Warn("HTTP health handler: store ping failed",
			"error", err.Error())
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
