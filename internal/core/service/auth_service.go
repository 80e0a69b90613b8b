package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/streamvault/identity-api/internal/core/domain"
	"github.com/streamvault/identity-api/internal/core/ports"
)

const (
	welcomeSubject      = "Welcome to StreamVault"
	welcomeAdminSubject = "Welcome to StreamVault - ADMIN"
)

// AuthService orchestrates registration and login against the credential
// store: uniqueness pre-check, creation, role bootstrapping, welcome
// notification, and token issuance.
type AuthService struct {
	users    ports.UserRepository
	roles    *RoleBootstrapper
	notifier ports.Notifier
	guard    ports.LoginGuard
	issuer   ports.TokenIssuer
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles *RoleBootstrapper,
	notifier ports.Notifier,
	guard ports.LoginGuard,
	issuer ports.TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		roles:    roles,
		notifier: notifier,
		guard:    guard,
		issuer:   issuer,
		log:      log,
	}
}

// Register creates a standard user account.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.register(ctx, username, email, password, false)
}

// RegisterAdmin creates a user account and assigns it the Admin role,
// creating the role first if it does not exist yet.
func (s *AuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.register(ctx, username, email, password, true)
}

func (s *AuthService) register(ctx context.Context, username, email, password string, admin bool) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrInvalidInput
	}

	// Pre-check; the store's unique index remains authoritative if two
	// registrations race past this point.
	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register %q: %w", username, err)
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Active:   true,
	}

	created, err := s.users.Create(ctx, user, password)
	if err != nil {
		return nil, err
	}

	subject := welcomeSubject
	if admin {
		subject = welcomeAdminSubject
		if err := s.grantAdmin(ctx, created); err != nil {
			// The user exists without the role; no rollback is attempted.
			s.log.Error().Err(err).
				Str("username", created.Username).
				Msg("user created but admin role assignment failed")
			return nil, &domain.CreationError{
				Reasons: []string{fmt.Sprintf("user %s created but %s role assignment failed", created.Username, domain.RoleAdmin)},
				Partial: true,
			}
		}
		created.Roles = append(created.Roles, domain.RoleAdmin)
	}

	if err := s.notifier.Send(ctx, ports.Notification{
		Subject:  subject,
		Username: created.Username,
		Email:    created.Email,
	}); err != nil {
		// Best effort only; the registration already succeeded.
		s.log.Warn().Err(err).
			Str("username", created.Username).
			Msg("welcome notification failed")
	}

	s.log.Info().Str("username", created.Username).Bool("admin", admin).Msg("user registered")
	return created, nil
}

func (s *AuthService) grantAdmin(ctx context.Context, user *domain.User) error {
	if err := s.roles.Ensure(ctx, domain.RoleAdmin); err != nil {
		return err
	}
	return s.users.AddToRole(ctx, user.Username, domain.RoleAdmin)
}

// Login verifies the credentials and issues a token for active accounts.
// Unknown username, wrong password, inactive account, and a throttled
// username all yield the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.guard != nil {
		allowed, err := s.guard.Allow(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login guard unavailable, allowing attempt")
		} else if !allowed {
			s.log.Info().Str("username", username).Msg("login throttled")
			return nil, domain.ErrInvalidCredentials
		}
	}

	user, err := s.users.VerifyPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login %q: %w", username, err)
	}

	if !user.Active {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	if s.guard != nil {
		if err := s.guard.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login guard reset failed")
		}
	}

	return s.issuer.Issue(user)
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login guard record failed")
	}
}
