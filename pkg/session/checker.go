package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultCheckInterval is the cadence of the proactive expiry check.
const DefaultCheckInterval = time.Minute

// Checker drives the refresh cycle on a fixed cadence so consumers rarely
// observe an expired access token. It holds no session state of its own.
type Checker struct {
	manager  *Manager
	logger   *slog.Logger
	interval time.Duration

	stopped  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

func NewChecker(m *Manager, logger *slog.Logger, interval time.Duration) *Checker {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Checker{
		manager:  m,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start launches the periodic check. It checks once right away, covering a
// freshly issued token that is already near expiry, then on every tick until
// Stop is called or ctx is cancelled.
func (c *Checker) Start(ctx context.Context) {
	go func() {
		c.check(ctx)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.check(ctx)
			}
		}
	}()
}

// Stop cancels the periodic check. Idempotent, and safe to call on a checker
// that was never started; no refresh fires after Stop returns even if a tick
// was already scheduled.
func (c *Checker) Stop() {
	c.stopped.Store(true)
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Checker) check(ctx context.Context) {
	// Re-checked at fire time: a tick may race Stop.
	if c.stopped.Load() {
		return
	}
	if !c.manager.NeedsRefresh() {
		return
	}

	if err := c.manager.Refresh(ctx); err != nil {
		c.logger.Warn("periodic refresh failed", "error", err)
	}
}
