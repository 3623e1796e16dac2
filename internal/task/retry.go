// Package task runs best-effort side effects off the request path,
// wrapped in exponential-backoff retries.
package task

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
)

// Do runs fn, retrying failures the classifier accepts. The delay
// grows by the strategy's backoff factor between attempts and the last
// error propagates once attempts are exhausted. Permanent failures
// (classifier returns false) are returned immediately.
//
// Do is meant for side effects only. State transitions and inventory
// operations must not go through it: replaying those without an
// idempotency key risks double application.
func Do(ctx context.Context, strategy retry.Strategy, retryable func(error) bool, fn func() error) error {
	attempts := strategy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := strategy.Delay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt >= attempts || (retryable != nil && !retryable(err)) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		if strategy.Backoff > 0 {
			delay = time.Duration(float64(delay) * float64(strategy.Backoff))
		}
	}
}
