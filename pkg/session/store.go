package session

import (
	"errors"
	"sync"
)

// Store owns the single authoritative session. All mutations go through it;
// reads return copies so no caller can observe or produce a torn write.
type Store struct {
	mu      sync.Mutex
	current *Session
}

func NewStore() *Store {
	return &Store{}
}

// Set installs a brand-new session, replacing any prior one.
func (st *Store) Set(s Session) error {
	if s.Identity.ID == "" || s.AccessToken == "" {
		return errors.New("session requires identity and access token")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = &s
	return nil
}

// Clear removes the session. Subsequent reads report unauthenticated.
func (st *Store) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = nil
}

// ReplaceTokens swaps the token bundle in one write, leaving the identity
// untouched. An empty newRefresh keeps the existing refresh token, since the
// backend rotates it only sometimes.
func (st *Store) ReplaceTokens(newAccess string, newAccessExp int64, newRefresh string, newRefreshExp int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.current == nil {
		return ErrNoActiveSession
	}
	next := *st.current
	next.AccessToken = newAccess
	next.AccessExpiresAt = newAccessExp
	if newRefresh != "" {
		next.RefreshToken = newRefresh
		next.RefreshExpiresAt = newRefreshExp
	}
	st.current = &next
	return nil
}

// Read returns a copy of the current session, or ok=false when there is none.
// It never blocks on I/O.
func (st *Store) Read() (Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.current == nil {
		return Session{}, false
	}
	return *st.current, true
}
