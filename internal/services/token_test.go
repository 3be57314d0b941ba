package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/learnhub/auth-service/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:        uuid.New(),
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Lopez",
		Role:      "user",
	}
}

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("", time.Hour)
	if err == nil {
		t.Fatalf("expected error for empty secret, got nil")
	}
}

func TestIssue_ClaimSet(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	user := testUser()
	tok, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("super-secret"), nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims error: %v", err)
	}
	if !parsed.Valid {
		t.Fatalf("expected valid token")
	}

	if got := claims["sub"]; got != user.ID.String() {
		t.Errorf("sub mismatch: got %v want %v", got, user.ID)
	}
	if got := claims["email"]; got != "ana@example.com" {
		t.Errorf("email mismatch: got %v", got)
	}
	if got := claims["rol"]; got != "user" {
		t.Errorf("rol mismatch: got %v", got)
	}
	if got := claims["name"]; got != "Ana" {
		t.Errorf("name mismatch: got %v", got)
	}
	if got := claims["last_name"]; got != "Lopez" {
		t.Errorf("last_name mismatch: got %v", got)
	}
}

func TestIssue_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("right-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	tok, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestDecodeExpiry(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("k", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	issuedAt := time.Now()
	tok, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	exp, err := issuer.DecodeExpiry(tok)
	if err != nil {
		t.Fatalf("DecodeExpiry error: %v", err)
	}

	remaining := exp - issuedAt.Unix()
	if remaining < 3595 || remaining > 3605 {
		t.Fatalf("expiry window out of range: %d seconds", remaining)
	}
}

func TestDecodeExpiry_Malformed(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("k", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	if _, err := issuer.DecodeExpiry("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
