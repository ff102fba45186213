package service

import (
	"context"
	"time"

	"github.com/dtroode/sessionkeeper/internal/logger"
)

// Cleanup periodically deletes refresh tokens that expired more than
// retention ago.
type Cleanup struct {
	refresh   *RefreshTokens
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger
}

func NewCleanup(refresh *RefreshTokens, interval, retention time.Duration, logger *logger.Logger) *Cleanup {
	return &Cleanup{refresh: refresh, interval: interval, retention: retention, logger: logger}
}

// Run blocks until ctx is done. A non-positive interval disables it.
func (c *Cleanup) Run(ctx context.Context) {
	if c.interval <= 0 {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep. Failures are logged and retried on the
// next tick.
func (c *Cleanup) RunOnce(ctx context.Context) {
	n, err := c.refresh.DeleteExpired(ctx, c.retention)
	if err != nil {
		c.logger.Warn("Cleanup service: sweep failed",
			"error", err.Error())
		return
	}
	if n > 0 {
		c.logger.Info("Cleanup service: deleted expired refresh tokens",
			"deleted", n)
	}
}
