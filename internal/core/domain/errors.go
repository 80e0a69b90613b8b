package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserExists signals a registration against a username that is
	// already taken. Raised by the pre-check and, authoritatively, by the
	// store's uniqueness constraint on insert.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound signals a lookup miss in the credential store.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers every login refusal: wrong password,
	// unknown username, and inactive account. Callers cannot distinguish
	// the cases; the uniformity is deliberate.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput signals a structurally bad request that never
	// reached the store.
	ErrInvalidInput = errors.New("invalid input")
)

// CreationError reports a store-level refusal to create a user, carrying the
// store's human-readable validation reasons. Partial marks the state where
// the user was created but the follow-up role assignment failed; the user is
// not rolled back, so Partial is the reconciliation signal for that
// inconsistency.
type CreationError struct {
	Reasons []string
	Partial bool
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("user could not be created: %s", strings.Join(e.Reasons, "; "))
}

// NewCreationError builds a CreationError from one or more reasons.
func NewCreationError(reasons ...string) *CreationError {
	return &CreationError{Reasons: reasons}
}
