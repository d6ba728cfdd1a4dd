package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a login attempt does not match the
// configured admin identity.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials holds the single admin identity. There is exactly one, fixed
// at construction; there is no registration, rotation, or lockout.
//
// By default the password is compared literally against the configured
// plaintext secret. When a bcrypt hash is supplied it takes precedence, so
// deployments can stop shipping a plaintext secret without code changes.
type Credentials struct {
	username string
	password string
	hash     string
}

// NewCredentials creates a credential store for the given admin identity.
// hash may be empty; if set it must be a bcrypt hash of the admin password
// and the plaintext password argument is ignored.
func NewCredentials(username, password, hash string) *Credentials {
	return &Credentials{
		username: username,
		password: password,
		hash:     hash,
	}
}

// Verify reports whether the supplied username and password match the admin
// identity.
func (c *Credentials) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) != 1 {
		return false
	}
	if c.hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
}
