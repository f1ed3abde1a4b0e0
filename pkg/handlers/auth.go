package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"sixwings/pkg/claims"
	"sixwings/pkg/token"
	"sixwings/pkg/user"
)

type RegisterForm struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshForm struct {
	RefreshToken string `json:"refreshToken"`
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type AuthHandler struct {
	Users  user.ServiceInterface
	Tokens token.ServiceInterface
	Logger *slog.Logger
}

func NewAuthHandler(users user.ServiceInterface, tokens token.ServiceInterface, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		Users:  users,
		Tokens: tokens,
		Logger: logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	newUser, err := h.Users.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if err.Error() != "user already exists" {
			h.Logger.Error("register", "error", err.Error())
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if ok := WriteResp(w, h.Logger, map[string]any{
			"errors": []FieldError{
				{
					Location: "body",
					Param:    "email",
					Value:    req.Email,
					Msg:      "already exists",
				},
			},
		}, http.StatusUnprocessableEntity); ok {
			h.Logger.Error("register", "error", err.Error())
		}
		return
	}

	h.writeTokenBundle(w, newUser, "register")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	account, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		var msg string
		if errors.Is(err, user.ErrNotFound) {
			msg = "user not found"
		} else {
			msg = "invalid password"
		}
		if ok := WriteResp(w, h.Logger, map[string]any{"message": msg}, http.StatusUnauthorized); ok {
			h.Logger.Error("login", "error", "unauthorized", "email", req.Email)
		}
		return
	}

	h.writeTokenBundle(w, account, "login")
}

// RefreshToken rotates the presented refresh token for a fresh pair.
// A dead token answers with its code in the error field so clients can tell
// it apart from a transient failure and force a re-login.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}
	if req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, typeError, "refreshToken is required")
		return
	}

	userID, err := h.Tokens.Rotate(req.RefreshToken)
	if err != nil {
		if errors.Is(err, token.ErrRefreshInvalid) || errors.Is(err, token.ErrRefreshExpired) {
			writeError(w, http.StatusUnauthorized, typeError, err.Error())
			return
		}
		h.Logger.Error("refresh", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "refresh failed")
		return
	}

	account, err := h.Users.Get(userID)
	if err != nil {
		h.Logger.Error("refresh", "error", err, "user", userID)
		writeError(w, http.StatusInternalServerError, typeError, "refresh failed")
		return
	}

	accessToken, err := h.Tokens.IssueAccess(account)
	if err != nil {
		h.Logger.Error("refresh token signing", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "refresh failed")
		return
	}

	refreshToken, err := h.Tokens.IssueRefresh(account.ID)
	if err != nil {
		h.Logger.Error("refresh token issue", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "refresh failed")
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{
		"token":        accessToken,
		"refreshToken": refreshToken,
	}, http.StatusOK); ok {
		h.Logger.Info("refresh", "user", account.ID)
	}
}

// Validate decodes the presented access token and reports its claims'
// timestamps, so clients learn the authoritative expiry instead of guessing.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}

	parsed, err := h.Tokens.ParseAccess(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}

	WriteResp(w, h.Logger, map[string]any{
		"data": map[string]int64{
			"exp": parsed.ExpiresAt,
			"iat": parsed.IssuedAt,
		},
	}, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	if err := h.Tokens.RevokeAll(c.User.ID); err != nil {
		h.Logger.Error("logout", "error", err, "user", c.User.ID)
		writeError(w, http.StatusInternalServerError, typeError, "logout failed")
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{"message": "logged out"}, http.StatusOK); ok {
		h.Logger.Info("logout", "user", c.User.ID)
	}
}

func (h *AuthHandler) writeTokenBundle(w http.ResponseWriter, account *user.User, action string) {
	accessToken, err := h.Tokens.IssueAccess(account)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	refreshToken, err := h.Tokens.IssueRefresh(account.ID)
	if err != nil {
		h.Logger.Error("refresh token issue", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{
		"id":           account.ID,
		"nome":         account.Name,
		"tipo":         account.Role,
		"email":        account.Email,
		"token":        accessToken,
		"refreshToken": refreshToken,
	}, http.StatusOK); ok {
		h.Logger.Info(action, "user", account.ID)
	}
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}
