package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Manager is the session lifecycle facade: it performs the credential
// exchange, owns refresh coordination and exposes the current session.
// Consumers read tokens through Current and never trigger refreshes
// themselves; the periodic checker and the post-login check do.
type Manager struct {
	api       API
	store     *Store
	logger    *slog.Logger
	threshold time.Duration
	now       func() time.Time

	refresh singleflight.Group
}

// Option configures a Manager.
type Option func(*Manager)

// WithRefreshThreshold overrides the remaining-lifetime cutoff below which
// a proactive refresh is triggered.
func WithRefreshThreshold(d time.Duration) Option {
	return func(m *Manager) { m.threshold = d }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(api API, store *Store, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		api:       api,
		store:     store,
		logger:    logger,
		threshold: DefaultRefreshThreshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login exchanges credentials for a token pair, learns the access token's
// expiry from the validate endpoint and installs the session. If the fresh
// token is already inside the refresh threshold, a refresh is attempted
// immediately instead of waiting for the first periodic tick.
func (m *Manager) Login(ctx context.Context, email, password string) (Session, error) {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}

	s := Session{
		Identity:     res.Identity,
		AccessToken:  res.Token,
		RefreshToken: res.RefreshToken,
	}

	info, err := m.api.Validate(ctx, res.Token)
	if err != nil {
		// No expiry means the evaluator reports the token expired, which
		// forces an early refresh rather than trusting it indefinitely.
		m.logger.Warn("post-login validate failed", "user", res.Identity.ID, "error", err)
	} else {
		s.AccessExpiresAt = info.ExpiresAt
	}

	if err := m.store.Set(s); err != nil {
		return Session{}, err
	}
	m.logger.Info("session installed", "user", s.Identity.ID, "role", string(s.Identity.Role))

	if NeedsRefresh(&s, m.now(), m.threshold) {
		if err := m.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshTransient) {
			return Session{}, err
		}
	}

	current, _ := m.store.Read()
	return current, nil
}

// Logout destroys the session. Safe to call when already logged out.
func (m *Manager) Logout() {
	m.store.Clear()
}

// Current returns a copy of the active session.
func (m *Manager) Current() (Session, bool) {
	return m.store.Read()
}

// NeedsRefresh reports whether the active session is due for a refresh.
func (m *Manager) NeedsRefresh() bool {
	s, ok := m.store.Read()
	if !ok {
		return false
	}
	return NeedsRefresh(&s, m.now(), m.threshold)
}

// Refresh renews the token pair. Concurrent callers share a single network
// round-trip: while one refresh is in flight every additional call waits for
// it and receives the same outcome. A definitive rejection clears the
// session; a transient failure leaves it untouched for the next tick.
func (m *Manager) Refresh(ctx context.Context) error {
	_, err, _ := m.refresh.Do("refresh", func() (any, error) {
		return nil, m.doRefresh(ctx)
	})
	return err
}

func (m *Manager) doRefresh(ctx context.Context) error {
	s, ok := m.store.Read()
	if !ok {
		return ErrNoActiveSession
	}
	if s.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	pair, err := m.api.Refresh(ctx, s.RefreshToken)
	switch {
	case errors.Is(err, ErrRefreshRejected):
		m.store.Clear()
		m.logger.Warn("refresh token rejected, session ended", "user", s.Identity.ID)
		return err
	case err != nil:
		m.logger.Warn("transient refresh failure", "user", s.Identity.ID, "error", err)
		return err
	}

	var expiresAt int64
	info, err := m.api.Validate(ctx, pair.Token)
	if err != nil {
		m.logger.Warn("post-refresh validate failed", "user", s.Identity.ID, "error", err)
	} else {
		expiresAt = info.ExpiresAt
	}

	if err := m.store.ReplaceTokens(pair.Token, expiresAt, pair.RefreshToken, 0); err != nil {
		// Logged out while the refresh was in flight.
		return err
	}
	m.logger.Info("session refreshed", "user", s.Identity.ID, "expires_at", expiresAt)
	return nil
}
