package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"sixwings/pkg/session"
)

func TestClientLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id":           "u1",
			"nome":         "Alice",
			"tipo":         "partner",
			"email":        "alice@example.com",
			"token":        "access-0",
			"refreshToken": "refresh-0",
		})
	}))
	defer srv.Close()

	c := session.NewClient(srv.URL, testLogger())

	res, err := c.Login(context.Background(), "alice@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "u1", res.Identity.ID)
	assert.Equal(t, session.RolePartner, res.Identity.Role)
	assert.Equal(t, "access-0", res.Token)
	assert.Equal(t, "refresh-0", res.RefreshToken)

	_, err = c.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
}

func TestClientLoginUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := session.NewClient(srv.URL, testLogger())
	_, err := c.Login(context.Background(), "alice@example.com", "secret")
	assert.ErrorIs(t, err, session.ErrUnavailable)
}

func TestClientValidate(t *testing.T) {
	exp := time.Now().Unix() + 3600
	iat := time.Now().Unix()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/validate", r.URL.Path)

		if r.Header.Get("Authorization") != "Bearer access-0" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]int64{"exp": exp, "iat": iat},
		})
	}))
	defer srv.Close()

	c := session.NewClient(srv.URL, testLogger())

	info, err := c.Validate(context.Background(), "access-0")
	assert.NoError(t, err)
	assert.Equal(t, exp, info.ExpiresAt)
	assert.Equal(t, iat, info.IssuedAt)

	_, err = c.Validate(context.Background(), "garbage")
	assert.ErrorIs(t, err, session.ErrValidateFailed)
}

func TestClientRefresh(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{
			name:   "success with rotation",
			status: http.StatusOK,
			body:   map[string]string{"token": "access-1", "refreshToken": "refresh-1"},
		},
		{
			name:    "definitive expiry is terminal",
			status:  http.StatusUnauthorized,
			body:    map[string]string{"error": "refresh_token_expired"},
			wantErr: session.ErrRefreshRejected,
		},
		{
			name:    "definitive invalid is terminal",
			status:  http.StatusUnauthorized,
			body:    map[string]string{"error": "refresh_token_invalid"},
			wantErr: session.ErrRefreshRejected,
		},
		{
			name:    "bare 401 stays transient",
			status:  http.StatusUnauthorized,
			body:    map[string]string{"message": "unauthorized"},
			wantErr: session.ErrRefreshTransient,
		},
		{
			name:    "server error is transient",
			status:  http.StatusInternalServerError,
			body:    map[string]string{"error": "oops"},
			wantErr: session.ErrRefreshTransient,
		},
		{
			name:    "empty success body is transient",
			status:  http.StatusOK,
			body:    map[string]string{},
			wantErr: session.ErrRefreshTransient,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/refresh-token", r.URL.Path)
				w.WriteHeader(test.status)
				json.NewEncoder(w).Encode(test.body)
			}))
			defer srv.Close()

			c := session.NewClient(srv.URL, testLogger())
			pair, err := c.Refresh(context.Background(), "refresh-0")

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "access-1", pair.Token)
			assert.Equal(t, "refresh-1", pair.RefreshToken)
		})
	}
}

func TestClientRefreshUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := session.NewClient(srv.URL, testLogger())
	_, err := c.Refresh(context.Background(), "refresh-0")
	assert.ErrorIs(t, err, session.ErrRefreshTransient)
}

// Full path against a fake backend: a rejected refresh logs the user out.
func TestRejectedRefreshEndsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			json.NewEncoder(w).Encode(map[string]string{
				"id": "u1", "nome": "Alice", "tipo": "user",
				"email": "alice@example.com",
				"token": "access-0", "refreshToken": "refresh-0",
			})
		case "/api/validate":
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]int64{"exp": time.Now().Unix() + 3600, "iat": time.Now().Unix()},
			})
		case "/api/refresh-token":
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "refresh_token_expired"})
		}
	}))
	defer srv.Close()

	st := session.NewStore()
	m := session.NewManager(session.NewClient(srv.URL, testLogger()), st, testLogger())

	_, err := m.Login(context.Background(), "alice@example.com", "secret")
	assert.NoError(t, err)

	err = m.Refresh(context.Background())
	assert.ErrorIs(t, err, session.ErrRefreshRejected)

	_, ok := m.Current()
	assert.False(t, ok, "session must be gone after a terminal rejection")
}
