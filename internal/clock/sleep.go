// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"math/rand"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SleepWithJitter sleeps for d plus a uniform random offset in [0, jitter).
// The jitter spreads concurrent per-chain loops so they do not fire in
// lockstep against the same remotes.
func SleepWithJitter(ctx context.Context, d, jitter time.Duration) error {
	if jitter > 0 {
		d += time.Duration(rand.Int63n(int64(jitter)))
	}
	return SleepWithContext(ctx, d)
}
