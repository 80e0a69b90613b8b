package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/streamvault/identity-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenClaims is the claim set carried by issued access tokens: the
// username, the user's roles in store enumeration order (not sorted), and a
// fresh random token identifier.
type TokenClaims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuerConfig is the process-wide signing configuration, injected at
// startup. The secret is never compiled in.
type TokenIssuerConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// JWTIssuer signs HS256 tokens bounded by the configured lifetime.
type JWTIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenIssuer(cfg TokenIssuerConfig) *JWTIssuer {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTIssuer{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue builds the claim set for the user and returns the encoded token
// together with its expiry.
func (i *JWTIssuer) Issue(user *domain.User) (*domain.Token, error) {
	now := i.now()
	validTo := now.Add(i.ttl)

	claims := TokenClaims{
		Name:  user.Username,
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(validTo),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.Token{Value: signed, ValidTo: validTo}, nil
}
