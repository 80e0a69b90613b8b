package service

import (
	"context"
	"fmt"

	"github.com/streamvault/identity-api/internal/core/ports"
)

// RoleBootstrapper ensures a named role exists before anyone is assigned to
// it. Ensure is idempotent; the repository tolerates a concurrent caller
// winning the create.
type RoleBootstrapper struct {
	roles ports.RoleRepository
}

func NewRoleBootstrapper(roles ports.RoleRepository) *RoleBootstrapper {
	return &RoleBootstrapper{roles: roles}
}

func (b *RoleBootstrapper) Ensure(ctx context.Context, name string) error {
	exists, err := b.roles.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("role lookup %q: %w", name, err)
	}
	if exists {
		return nil
	}
	if err := b.roles.Create(ctx, name); err != nil {
		return fmt.Errorf("role create %q: %w", name, err)
	}
	return nil
}
