// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// SleepFunc waits for d unless ctx ends first. Components take one so tests can skip real waits.
type SleepFunc func(ctx context.Context, d time.Duration) error

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

// Schedule returns a jitter-free exponential schedule: initial, initial*multiplier, ...
// capped at max. It never stops on its own; callers bound the number of attempts.
func Schedule(initial, max time.Duration, multiplier float64) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = max
	b.Multiplier = multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
