package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("expected subject alice@example.com, got %q", subject)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256", time.Hour)

	token, err := svc.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token + "x"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenService("secret-a", "HS256", time.Hour)
	verifier, _ := NewTokenService("secret-b", "HS256", time.Hour)

	token, _ := issuer.Issue("carol@example.com")
	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256", time.Hour)

	claims := jwt.MapClaims{
		"sub": "dave@example.com",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256", time.Hour)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_AlgorithmMismatch(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256", time.Hour)

	claims := jwt.MapClaims{
		"sub": "eve@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewTokenService_Validation(t *testing.T) {
	if _, err := NewTokenService("", "HS256", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewTokenService("secret", "RS256", time.Hour); err == nil {
		t.Fatalf("expected error for non-HMAC algorithm")
	}
	if _, err := NewTokenService("secret", "nonsense", time.Hour); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}
