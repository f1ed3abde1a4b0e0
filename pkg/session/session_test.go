package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"sixwings/pkg/session"
)

func TestIsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name    string
		exp     int64
		expired bool
	}{
		{"far in the future", now.Unix() + 3600, false},
		{"one second left", now.Unix() + 1, false},
		{"exactly now", now.Unix(), true},
		{"in the past", now.Unix() - 10, true},
		{"unknown expiry", 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := &session.Session{AccessExpiresAt: test.exp}
			assert.Equal(t, test.expired, session.IsExpired(s, now))
		})
	}
}

func TestRemaining(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	s := &session.Session{AccessExpiresAt: now.Unix() + 120}
	assert.Equal(t, 2*time.Minute, session.Remaining(s, now))

	s.AccessExpiresAt = now.Unix() - 120
	assert.Equal(t, time.Duration(0), session.Remaining(s, now))

	s.AccessExpiresAt = 0
	assert.Equal(t, time.Duration(0), session.Remaining(s, now))
}

func TestNeedsRefresh(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	threshold := 5 * time.Minute

	tests := []struct {
		name       string
		exp        int64
		refresh    string
		refreshExp int64
		want       bool
	}{
		{"plenty of time left", now.Unix() + 3600, "rt", 0, false},
		{"inside threshold", now.Unix() + 200, "rt", 0, true},
		{"exactly at threshold", now.Unix() + 300, "rt", 0, false},
		{"already expired", now.Unix() - 5, "rt", 0, true},
		{"unknown expiry forces refresh", 0, "rt", 0, true},
		{"no refresh token", now.Unix() + 200, "", 0, false},
		{"refresh token expired", now.Unix() + 200, "rt", now.Unix() - 1, false},
		{"refresh token still valid", now.Unix() + 200, "rt", now.Unix() + 86400, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := &session.Session{
				AccessExpiresAt:  test.exp,
				RefreshToken:     test.refresh,
				RefreshExpiresAt: test.refreshExp,
			}
			assert.Equal(t, test.want, session.NeedsRefresh(s, now, threshold))
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, session.RoleAdmin, session.ParseRole("admin"))
	assert.Equal(t, session.RolePartner, session.ParseRole("partner"))
	assert.Equal(t, session.RoleUser, session.ParseRole("user"))
	assert.Equal(t, session.RoleUser, session.ParseRole("something else"))
	assert.Equal(t, session.RoleUser, session.ParseRole(""))
}
