package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/streamvault/identity-api/internal/core/domain"
)

func TestTokenIssuer_ClaimsRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		Secret:   "secret",
		Issuer:   "http://issuer.local",
		Audience: "http://audience.local",
		TTL:      time.Hour,
	})
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(&domain.User{
		Username: "alice",
		Roles:    []string{"Admin", "User"},
		Active:   true,
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token.Value, claims, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			t.Fatalf("unexpected signing method %s", tk.Method.Alg())
		}
		return []byte("secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issued }))
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}

	if claims.Name != "alice" {
		t.Fatalf("expected name claim alice, got %q", claims.Name)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "Admin" || claims.Roles[1] != "User" {
		t.Fatalf("expected both role claims in store order, got %v", claims.Roles)
	}
	if claims.ID == "" {
		t.Fatalf("expected a fresh token identifier claim")
	}
	if claims.Issuer != "http://issuer.local" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "http://audience.local" {
		t.Fatalf("unexpected audience %v", claims.Audience)
	}
	if !claims.ExpiresAt.Time.Equal(issued.Add(time.Hour)) {
		t.Fatalf("expiry must be issuance+TTL, got %v", claims.ExpiresAt.Time)
	}
	if !token.ValidTo.Equal(claims.ExpiresAt.Time) {
		t.Fatalf("ValidTo %v does not match exp claim %v", token.ValidTo, claims.ExpiresAt.Time)
	}
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{Secret: "secret"})
	user := &domain.User{Username: "alice"}

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		token, err := issuer.Issue(user)
		if err != nil {
			t.Fatalf("Issue returned error: %v", err)
		}
		claims := &TokenClaims{}
		if _, err := jwt.ParseWithClaims(token.Value, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		}); err != nil {
			t.Fatalf("parse: %v", err)
		}
		if seen[claims.ID] {
			t.Fatalf("token identifier %q repeated", claims.ID)
		}
		seen[claims.ID] = true
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{Secret: "secret"})
	if issuer.ttl != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, issuer.ttl)
	}
}
