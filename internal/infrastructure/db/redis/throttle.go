package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 10
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per username in Redis.
// Key format: login:fail:<username>, expiring after the configured window.
// Once the count reaches the limit, further attempts are refused until the
// key expires.
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle. Non-positive limit or window fall
// back to the defaults.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Allow reports whether a login attempt for the username may proceed.
func (t *LoginThrottle) Allow(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n < t.limit, nil
}

// RecordFailure increments the failure count, starting the expiry window on
// the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure count after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return fmt.Sprintf("login:fail:%s", username)
}
