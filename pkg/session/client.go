package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// API is the slice of the 6Wings backend the session manager depends on.
type API interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Validate(ctx context.Context, token string) (TokenInfo, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type LoginResult struct {
	Identity     Identity
	Token        string
	RefreshToken string
}

// TokenInfo carries the decoded claims of an issued token, epoch seconds.
type TokenInfo struct {
	IssuedAt  int64
	ExpiresAt int64
}

type TokenPair struct {
	Token        string
	RefreshToken string
}

// Client talks to the backend auth endpoints and translates transport and
// status errors into the package's error taxonomy. Raw HTTP errors never
// leave this type.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		Logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Type         string `json:"tipo"`
	Email        string `json:"email"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type validateResponse struct {
	Data struct {
		Exp int64 `json:"exp"`
		Iat int64 `json:"iat"`
	} `json:"data"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var resp loginResponse
	status, err := c.postJSON(ctx, "/api/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", ErrUnavailable)
	}
	if status != http.StatusOK || resp.Token == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	return LoginResult{
		Identity: Identity{
			ID:    resp.ID,
			Name:  resp.Name,
			Role:  ParseRole(resp.Type),
			Email: resp.Email,
		},
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *Client) Validate(ctx context.Context, token string) (TokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/validate", nil)
	if err != nil {
		return TokenInfo{}, fmt.Errorf("validate: %w", ErrValidateFailed)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	httpResp, err := c.HTTP.Do(req)
	if err != nil {
		return TokenInfo{}, fmt.Errorf("validate: %w", ErrValidateFailed)
	}
	defer httpResp.Body.Close()

	var resp validateResponse
	if httpResp.StatusCode != http.StatusOK || json.NewDecoder(httpResp.Body).Decode(&resp) != nil {
		return TokenInfo{}, fmt.Errorf("validate: status %d: %w", httpResp.StatusCode, ErrValidateFailed)
	}

	return TokenInfo{IssuedAt: resp.Data.Iat, ExpiresAt: resp.Data.Exp}, nil
}

// Refresh exchanges the refresh token for a new pair. Only a definitive
// rejection from the backend is terminal; anything ambiguous (network error,
// 5xx, unrecognized body) is reported as transient so the periodic check
// retries it.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	body, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return TokenPair{}, fmt.Errorf("refresh: %w", ErrRefreshTransient)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/refresh-token", bytes.NewReader(body))
	if err != nil {
		return TokenPair{}, fmt.Errorf("refresh: %w", ErrRefreshTransient)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Warn("refresh transport failure", "error", err)
		return TokenPair{}, fmt.Errorf("refresh: %w", ErrRefreshTransient)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == http.StatusOK {
		var resp refreshResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil || resp.Token == "" {
			return TokenPair{}, fmt.Errorf("refresh: bad response body: %w", ErrRefreshTransient)
		}
		return TokenPair{Token: resp.Token, RefreshToken: resp.RefreshToken}, nil
	}

	var apiErr apiError
	_ = json.NewDecoder(httpResp.Body).Decode(&apiErr)
	if isTerminalRefreshError(apiErr.Error) {
		return TokenPair{}, fmt.Errorf("refresh: %s: %w", apiErr.Error, ErrRefreshRejected)
	}

	return TokenPair{}, fmt.Errorf("refresh: status %d: %w", httpResp.StatusCode, ErrRefreshTransient)
}

// isTerminalRefreshError recognizes the backend's definitive rejection codes.
// Any other failure, 401 included, stays retryable.
func isTerminalRefreshError(code string) bool {
	switch code {
	case "refresh_token_expired", "refresh_token_invalid", "refresh_token_revoked":
		return true
	}
	return false
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
