// Package middleware provides the HTTP middleware stack: the admin token
// gate, request logging, and prometheus metrics.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brewnote/cafe-menu/internal/auth"
)

// TokenHeader is the header the admin client sends its session token in.
// It is a bare custom header, not Authorization: Bearer; existing clients
// depend on this exact transport.
const TokenHeader = "Token"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// usernameKey is the context key for the authenticated admin username.
const usernameKey contextKey = "username"

// Username extracts the authenticated username from the context.
// Returns empty string if the request did not pass the token gate.
func Username(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// TokenAuth returns middleware that guards admin writes. A missing token is
// rejected before verification is attempted; a present token that fails
// verification for any reason is rejected with a single collapsed error.
// On success the admin username is added to the request context.
func TokenAuth(tokens *auth.TokenManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(TokenHeader)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			username, err := tokens.Verify(raw)
			if err != nil {
				slog.Warn("token rejected", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
