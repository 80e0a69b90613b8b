package ports

import "context"

// Notification is an account-related message addressed to a user.
type Notification struct {
	Subject  string
	Username string
	Email    string
}

// Notifier delivers account notifications. Best effort from the caller's
// perspective: a delivery failure must never fail the operation that
// triggered it, but it must remain observable (log line, counter).
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// LoginGuard throttles repeated failed logins per username.
type LoginGuard interface {
	// Allow reports whether a login attempt for the username may proceed.
	Allow(ctx context.Context, username string) (bool, error)
	// RecordFailure notes a failed attempt.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, username string) error
}
