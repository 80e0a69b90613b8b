package ports

import (
	"context"

	"github.com/streamvault/identity-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	RegisterAdmin(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.Token, error)
}

// TokenIssuer builds the claim set for a user and produces a signed,
// time-bounded token.
type TokenIssuer interface {
	Issue(user *domain.User) (*domain.Token, error)
}
