// Package auth establishes and checks admin identity: a single credential
// pair verified at login, and signed session tokens checked on every write.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMissingToken is returned when a guarded request carries no token.
	ErrMissingToken = errors.New("authorization token required")
	// ErrInvalidToken covers every verification failure: bad signature,
	// malformed token, expired session. Callers cannot tell these apart,
	// matching the behavior existing admin clients expect.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenManager issues and verifies session tokens.
// Tokens are HS256 JWTs carrying the admin username; they are stateless,
// never stored server-side, and die at expiry. The signing secret and
// lifetime are injected so tests can use fixture values.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// Claims are the session token claims.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a TokenManager with the given signing secret and
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed session token for the given username.
func (m *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning the username it
// asserts. Every failure mode maps to ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
