package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brewnote/cafe-menu/internal/auth"
	"github.com/brewnote/cafe-menu/internal/models"
)

// AuthHandler handles admin login.
type AuthHandler struct {
	creds  *auth.Credentials
	tokens *auth.TokenManager
}

// NewAuthHandler creates an AuthHandler over the given credential store and
// token manager.
func NewAuthHandler(creds *auth.Credentials, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		creds:  creds,
		tokens: tokens,
	}
}

// Login handles POST /api/admin/login. A credential match yields a fresh
// session token; anything else is a single undifferentiated 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.creds.Verify(req.Username, req.Password) {
		slog.Warn("login rejected", "username", req.Username)
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("admin logged in", "username", req.Username)
	respondJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}
