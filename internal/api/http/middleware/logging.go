package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/logger"
)

// Logging logs every HTTP request with its status and latency.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		attrs := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_ip", c.RealIP(),
		}

		switch {
		case status >= 500:
			l.logger.Error("HTTP request completed", attrs...)
		case status >= 400:
			l.logger.Warn("HTTP request completed", attrs...)
		default:
			l.logger.Info("HTTP request completed", attrs...)
		}

		return nil
	}
}
