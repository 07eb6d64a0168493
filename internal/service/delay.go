package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/clock"
)

// Delay policy between remote calls and job restarts. Every sleep adds up to
// delayJitter of random jitter so chains drift out of lockstep.
const (
	// courtesyDelay paces consecutive block fetches during a walk.
	courtesyDelay = 100 * time.Millisecond
	// retryDelay paces refetches of a block the remote has not propagated yet.
	retryDelay = 100 * time.Millisecond
	// jobErrorDelay precedes resubmission of a failed job.
	jobErrorDelay = time.Second
	// recalculateDelay separates TPS calculation cycles.
	recalculateDelay = 60 * time.Second

	delayJitter = 100 * time.Millisecond
)

func jitteredSleep(ctx context.Context, d time.Duration) error {
	return clock.SleepWithJitter(ctx, d, delayJitter)
}
