package app

import (
	"strings"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

func TestInviteServiceRoundTrip(t *testing.T) {
	svc := NewInviteService("test-secret", "gridlock", 10*time.Minute)

	tokenString, err := svc.GenerateToken("match-123", "host-user")
	if err != nil {
		t.Fatalf("generate invite token error: %v", err)
	}

	invite, err := svc.VerifyToken(tokenString)
	if err != nil {
		t.Fatalf("verify invite token error: %v", err)
	}
	if invite.MatchID != "match-123" {
		t.Fatalf("match id = %s, want match-123", invite.MatchID)
	}
	if invite.HostID != "host-user" {
		t.Fatalf("host id = %s, want host-user", invite.HostID)
	}
}

func TestInviteServiceGenerateTokenValidation(t *testing.T) {
	svc := NewInviteService("secret", "gridlock", time.Minute)

	if _, err := svc.GenerateToken("", "host"); err == nil {
		t.Fatal("expected error for empty match id")
	}
	if _, err := svc.GenerateToken("match", ""); err == nil {
		t.Fatal("expected error for empty host id")
	}
	incomplete := NewInviteService("", "gridlock", time.Minute)
	if _, err := incomplete.GenerateToken("match", "host"); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestInviteServiceRejectsWrongSecret(t *testing.T) {
	svc := NewInviteService("secret-a", "gridlock", time.Minute)
	tokenString, err := svc.GenerateToken("match-123", "host-user")
	if err != nil {
		t.Fatalf("generate invite token error: %v", err)
	}

	other := NewInviteService("secret-b", "gridlock", time.Minute)
	if _, err := other.VerifyToken(tokenString); err == nil {
		t.Fatal("expected verification to fail under a different secret")
	}
}

func TestInviteServiceRejectsWrongIssuer(t *testing.T) {
	svc := NewInviteService("secret", "someone-else", time.Minute)
	tokenString, err := svc.GenerateToken("match-123", "host-user")
	if err != nil {
		t.Fatalf("generate invite token error: %v", err)
	}

	verifier := NewInviteService("secret", "gridlock", time.Minute)
	_, err = verifier.VerifyToken(tokenString)
	if err == nil || !strings.Contains(err.Error(), "issuer") {
		t.Fatalf("error = %v, want issuer mismatch", err)
	}
}

func TestInviteServiceRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"iss": "gridlock",
		"sub": "host-user",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
		"mid": "match-123",
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token error: %v", err)
	}

	svc := NewInviteService("secret", "gridlock", time.Minute)
	if _, err := svc.VerifyToken(tokenString); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}
