package token

import "time"

// RefreshToken is the server-side record of an issued refresh credential.
// The token value itself is opaque; the row binds it to a user and a hard
// expiry after which it can never mint another access token.
type RefreshToken struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Repository interface {
	Create(userID, token string, expiresAt time.Time) error
	Find(token string) (*RefreshToken, error)
	Delete(token string) error
	DeleteByUser(userID string) error
}
