package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSignParseRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	sub := Subject{ID: uuid.New(), Email: "ada@example.com", UserName: "ada", Role: "admin"}

	raw, err := m.Sign(sub)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := m.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != sub.ID || claims.Email != sub.Email || claims.UserName != sub.UserName || claims.Role != sub.Role {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Sub(claims.IssuedAt.Time) != time.Hour {
		t.Fatalf("expected one hour lifetime, got %+v", claims.RegisteredClaims)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	raw, err := m.Sign(Subject{ID: uuid.New(), Role: "normal"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m.now = time.Now
	if _, err := m.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	raw, err := NewManager("other-secret", time.Hour).Sign(Subject{ID: uuid.New()})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewManager("test-secret", time.Hour).Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := NewManager("test-secret", time.Hour).Parse("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
