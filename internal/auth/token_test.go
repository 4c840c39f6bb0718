package auth

import (
	"testing"
	"time"

	"otoman/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "otoman-test"}
}

func TestIssueAndVerifyToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	token, err := IssueToken(cfg, "user-1", "budi@example.com", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := VerifyToken(cfg, token, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Email != "budi@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now()

	token, err := IssueToken(cfg, "user-1", "budi@example.com", issued)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := VerifyToken(cfg, token, issued.Add(TokenTTL+time.Hour)); err == nil {
		t.Fatalf("expected expired token rejected")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	now := time.Now()
	token, err := IssueToken(testJWTConfig(), "user-1", "budi@example.com", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := config.JWTConfig{Secret: "other-secret"}
	if _, err := VerifyToken(other, token, now); err == nil {
		t.Fatalf("expected token with wrong secret rejected")
	}
}

func TestIssueToken_MissingSecret(t *testing.T) {
	if _, err := IssueToken(config.JWTConfig{}, "user-1", "budi@example.com", time.Now()); err == nil {
		t.Fatalf("expected error with empty secret")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "rahasia123") {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword(hash, "salah") {
		t.Fatalf("expected wrong password rejected")
	}
}
