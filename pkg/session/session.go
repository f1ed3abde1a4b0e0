package session

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
	RoleUser    Role = "user"
)

// ParseRole maps the backend "tipo" field onto the closed role set.
// Unknown values degrade to the least privileged role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RolePartner:
		return RolePartner
	default:
		return RoleUser
	}
}

// Identity describes the authenticated user. It is issued once per login
// and never changes during a session's lifetime.
type Identity struct {
	ID    string
	Name  string
	Role  Role
	Email string
}

// Session binds an identity to its current token pair. Expiries are epoch
// seconds taken from the backend's validate endpoint; zero means the expiry
// is unknown, which the evaluator treats as already expired.
type Session struct {
	Identity         Identity
	AccessToken      string
	AccessExpiresAt  int64
	RefreshToken     string
	RefreshExpiresAt int64
}

// DefaultRefreshThreshold is the remaining access-token lifetime below
// which a proactive refresh is triggered.
const DefaultRefreshThreshold = 5 * time.Minute

// IsExpired reports whether the access token is unusable at the given time.
// A session without a known expiry is treated as expired.
func IsExpired(s *Session, now time.Time) bool {
	if s.AccessExpiresAt == 0 {
		return true
	}
	return now.Unix() >= s.AccessExpiresAt
}

// Remaining returns the access token's remaining lifetime, floored at zero.
func Remaining(s *Session, now time.Time) time.Duration {
	if s.AccessExpiresAt == 0 {
		return 0
	}
	left := s.AccessExpiresAt - now.Unix()
	if left < 0 {
		return 0
	}
	return time.Duration(left) * time.Second
}

// NeedsRefresh reports whether the session is close enough to expiry to
// warrant a refresh and still holds a usable refresh token.
func NeedsRefresh(s *Session, now time.Time, threshold time.Duration) bool {
	if s.RefreshToken == "" {
		return false
	}
	if s.RefreshExpiresAt != 0 && now.Unix() >= s.RefreshExpiresAt {
		return false
	}
	return Remaining(s, now) < threshold
}
