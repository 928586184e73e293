package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewLoginLimiter(client, 3, time.Minute), mr
}

func TestLoginLimiter_LocksAfterThreshold(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	locked, err := limiter.TooManyFailures(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if locked {
		t.Fatalf("locked before any failure")
	}

	for i := 0; i < 3; i++ {
		if err := limiter.RecordFailure(ctx, "a@b.com"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	locked, err = limiter.TooManyFailures(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !locked {
		t.Fatalf("expected lockout after 3 failures")
	}

	// Other emails are unaffected.
	locked, err = limiter.TooManyFailures(ctx, "b@b.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if locked {
		t.Fatalf("unrelated email locked")
	}
}

func TestLoginLimiter_ResetClearsCounter(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.RecordFailure(ctx, "a@b.com"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if err := limiter.Reset(ctx, "a@b.com"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	locked, err := limiter.TooManyFailures(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if locked {
		t.Fatalf("still locked after reset")
	}
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.RecordFailure(ctx, "a@b.com"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	mr.FastForward(2 * time.Minute)

	locked, err := limiter.TooManyFailures(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if locked {
		t.Fatalf("lockout survived window expiry")
	}
}
