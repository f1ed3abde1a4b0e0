package claims

import jwt "github.com/dgrijalva/jwt-go"

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

type Claims struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"nome"`
		Role  string `json:"tipo"`
		Email string `json:"email"`
	} `json:"user"`
	jwt.StandardClaims
}
