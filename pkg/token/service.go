package token

import (
	"errors"
	"fmt"
	"os"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"sixwings/pkg/claims"
	"sixwings/pkg/generator"
	"sixwings/pkg/user"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

var (
	// Error strings double as the wire codes clients match on to tell a
	// dead refresh token from a transient failure.
	ErrRefreshInvalid = errors.New("refresh_token_invalid")
	ErrRefreshExpired = errors.New("refresh_token_expired")
)

type ServiceInterface interface {
	IssueAccess(u *user.User) (string, error)
	IssueRefresh(userID string) (string, error)
	Rotate(refreshToken string) (string, error)
	ParseAccess(tokenString string) (*claims.Claims, error)
	RevokeAll(userID string) error
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

// IssueAccess mints a short-lived HS256 JWT carrying the user's identity.
func (s *Service) IssueAccess(u *user.User) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]string{
			"id":    u.ID,
			"nome":  u.Name,
			"tipo":  u.Role,
			"email": u.Email,
		},
		"iat": now.Unix(),
		"exp": now.Add(accessTokenTTL).Unix(),
	})

	JWTSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(JWTSecret))
}

// IssueRefresh mints an opaque long-lived refresh token and records it.
func (s *Service) IssueRefresh(userID string) (string, error) {
	value, err := generator.NewRefreshToken()
	if err != nil {
		return "", fmt.Errorf("refresh token gen error: %s", err)
	}

	expiresAt := time.Now().UTC().Add(refreshTokenTTL)
	if err := s.Repo.Create(userID, value, expiresAt); err != nil {
		return "", err
	}

	return value, nil
}

// Rotate consumes a refresh token and returns its owner's user id. The old
// row is always deleted: an expired token is gone for good, a used one
// cannot be replayed.
func (s *Service) Rotate(refreshToken string) (string, error) {
	rt, err := s.Repo.Find(refreshToken)
	if err != nil {
		return "", err
	}

	if time.Now().UTC().After(rt.ExpiresAt) {
		_ = s.Repo.Delete(rt.Token)
		return "", ErrRefreshExpired
	}

	if err := s.Repo.Delete(rt.Token); err != nil {
		return "", err
	}

	return rt.UserID, nil
}

// ParseAccess verifies the signature and expiry of an access token and
// returns its claims.
func (s *Service) ParseAccess(tokenString string) (*claims.Claims, error) {
	parsed := &claims.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		method, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, errors.New("bad sign method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid || parsed.User.ID == "" {
		return nil, errors.New("invalid token")
	}

	return parsed, nil
}

func (s *Service) RevokeAll(userID string) error {
	return s.Repo.DeleteByUser(userID)
}
