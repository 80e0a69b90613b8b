package ports

import (
	"context"

	"github.com/streamvault/identity-api/internal/core/domain"
)

// UserRepository is the credential store: it persists user identity, owns
// password hashing and policy validation, and manages role membership.
type UserRepository interface {
	// FindByUsername returns the stored user or domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create persists a new user, hashing and validating the raw password.
	// Returns domain.ErrUserExists on a username collision and a
	// *domain.CreationError carrying validation reasons when the password
	// fails policy.
	Create(ctx context.Context, user *domain.User, password string) (*domain.User, error)

	// VerifyPassword checks username+password and returns the matching user.
	// An unknown username and a wrong password both yield
	// domain.ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, username, password string) (*domain.User, error)

	// AddToRole adds the user to the named role. The role must already exist.
	AddToRole(ctx context.Context, username, role string) error
}

// RoleRepository manages the set of known roles.
type RoleRepository interface {
	Exists(ctx context.Context, name string) (bool, error)
	// Create persists the role. Creating a role that already exists is not
	// an error; concurrent bootstrappers may race to the same name.
	Create(ctx context.Context, name string) error
}
