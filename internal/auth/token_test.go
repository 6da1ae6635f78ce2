package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "token-test-secret-at-least-32-chars!!"

func newTestIssuer(t *testing.T, ttl time.Duration) *Issuer {
	t.Helper()
	issuer, err := NewIssuer([]byte(testSecret), "HS256", ttl)
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}
	return issuer
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, time.Hour)
	tok, err := issuer.Issue("user-1", "test@example.com", "12345678000199")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Email != "test@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "test@example.com")
	}
	if claims.ScopeID != "12345678000199" {
		t.Errorf("ScopeID = %q, want %q", claims.ScopeID, "12345678000199")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("expiry is missing or not in the future")
	}
}

func TestIssuer_Verify_Expired(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, -time.Minute)
	tok, err := issuer.Issue("user-1", "test@example.com", "11144477735")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestIssuer_Verify_Tampered(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, time.Hour)
	tok, err := issuer.Issue("user-1", "test@example.com", "11144477735")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip the last character of the signature.
	last := tok[len(tok)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := tok[:len(tok)-1] + string(replacement)

	_, err = issuer.Verify(tampered)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, time.Hour)
	tok, err := issuer.Issue("user-1", "test@example.com", "11144477735")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	other, err := NewIssuer([]byte("another-secret-that-is-32-chars!!!!"), "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}
	if _, err := other.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestIssuer_Verify_Malformed(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, time.Hour)
	for _, tok := range []string{"", "not.a.jwt", strings.Repeat("x", 100)} {
		if _, err := issuer.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q) err = %v, want ErrTokenInvalid", tok, err)
		}
	}
}

func TestNewIssuer_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer([]byte(testSecret), "RS256", time.Hour); err == nil {
		t.Error("expected error for non-HMAC algorithm")
	}
}
