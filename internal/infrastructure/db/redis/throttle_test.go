package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, maxAttempts int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, maxAttempts, window), srv
}

func TestLoginThrottle_BudgetSpent(t *testing.T) {
	throttle, _ := newTestThrottle(t, 3, time.Minute)
	ctx := context.Background()

	exceeded, err := throttle.Exceeded(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("Exceeded: %v", err)
	}
	if exceeded {
		t.Fatalf("fresh account must not be throttled")
	}

	for i := 0; i < 3; i++ {
		if err := throttle.RegisterFailure(ctx, "a@example.com"); err != nil {
			t.Fatalf("RegisterFailure: %v", err)
		}
	}

	exceeded, err = throttle.Exceeded(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("Exceeded: %v", err)
	}
	if !exceeded {
		t.Fatalf("account must be throttled after 3 failures")
	}

	// Another account is unaffected.
	exceeded, err = throttle.Exceeded(ctx, "b@example.com")
	if err != nil {
		t.Fatalf("Exceeded: %v", err)
	}
	if exceeded {
		t.Fatalf("other accounts must not be throttled")
	}
}

func TestLoginThrottle_Reset(t *testing.T) {
	throttle, _ := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RegisterFailure(ctx, "a@example.com"); err != nil {
		t.Fatalf("RegisterFailure: %v", err)
	}
	if err := throttle.Reset(ctx, "a@example.com"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	exceeded, err := throttle.Exceeded(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("Exceeded: %v", err)
	}
	if exceeded {
		t.Fatalf("counter must be cleared after Reset")
	}
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	throttle, srv := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RegisterFailure(ctx, "a@example.com"); err != nil {
		t.Fatalf("RegisterFailure: %v", err)
	}

	srv.FastForward(2 * time.Minute)

	exceeded, err := throttle.Exceeded(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("Exceeded: %v", err)
	}
	if exceeded {
		t.Fatalf("counter must expire with the window")
	}
}
