package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultLockWindow  = 15 * time.Minute
)

// LoginLimiter throttles failed logins per email, backed by Redis.
// Key format: login_failures:<email>, counter with a sliding TTL.
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter. Non-positive arguments fall back
// to 5 failures within 15 minutes.
func NewLoginLimiter(client *redis.Client, maxFailures int64, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultLockWindow
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures, window: window}
}

// TooManyFailures reports whether email has reached the failure threshold.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter get: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure counts one failed attempt and refreshes the lock window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter record: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_failures:" + email
}
