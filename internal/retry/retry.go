// Package retry is a generic exponential-backoff helper for idempotent
// reads, such as fetching role metadata. Registration submits are never
// retried: validation failures are final and backend errors surface to the
// user immediately.
package retry

import (
	"context"
	"math/rand"
	"time"
)

const (
	maxDelay     = time.Second * 45
	initialDelay = time.Millisecond * 200
	maxRandDelay = time.Millisecond * 100
)

func jitter() time.Duration {
	return time.Duration(rand.Int63n(int64(maxRandDelay)))
}

// Backoff returns the delay before the given attempt (0-based), doubling
// from initialDelay, capped at maxDelay, with a little jitter on top.
func Backoff(attempt uint) time.Duration {
	delay := initialDelay * (1 << attempt)
	if delay > maxDelay || delay <= 0 {
		delay = maxDelay
	}
	return delay + jitter()
}

// Do calls fn up to attempts times, sleeping Backoff(i) between failures.
// It returns nil on the first success, the last error otherwise, and stops
// early when the context is cancelled.
func Do(ctx context.Context, attempts uint, fn func() error) error {
	var err error
	for i := uint(0); i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(Backoff(i))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
