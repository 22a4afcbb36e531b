package adapters

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "user@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %s", claims.Email)
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := svc.HashPassword("correct horse battery")
		if err != nil {
			t.Fatalf("failed to hash: %v", err)
		}
		if hash == "correct horse battery" {
			t.Error("hash must not equal the plain password")
		}
		if err := svc.VerifyPassword(hash, "correct horse battery"); err != nil {
			t.Errorf("expected matching password to verify: %v", err)
		}
		if err := svc.VerifyPassword(hash, "wrong password"); err == nil {
			t.Error("expected mismatched password to fail")
		}
	})

	t.Run("strength", func(t *testing.T) {
		if err := svc.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected short password to be rejected")
		}
		if err := svc.ValidatePasswordStrength("longenough"); err != nil {
			t.Errorf("expected 10-char password to pass: %v", err)
		}
	})
}
