package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "fixture-secret"

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	username, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if username != "admin" {
		t.Errorf("username mismatch: got %q, want %q", username, "admin")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	// Negative TTL issues a token that is already expired.
	m := NewTokenManager(testSecret, -time.Minute)

	token, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = m.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager(testSecret, time.Hour)
	verifier := NewTokenManager("some-other-secret", time.Hour)

	token, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	for _, token := range []string{"garbage", "a.b.c", ""} {
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	t1, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	t2, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if t1 == t2 {
		t.Error("expected distinct tokens for consecutive logins")
	}
}
