package retryfuture

import (
	"context"
	"fmt"
	"time"

	"github.com/everyday-items/asyncx/future"
)

// Go runs fn in its own goroutine, retrying on error per policy, and
// returns a Future that resolves with fn's eventual success or with
// ErrMaxAttemptsReached (wrapping the last error) once attempts are
// exhausted. A ctx cancellation short-circuits both the retry loop and
// the backoff sleep.
func Go[T any](ctx context.Context, policy Policy, fn func(context.Context) (T, error)) future.Future[T] {
	p := future.NewPromise[T]()

	go func() {
		var lastErr error
		for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
			select {
			case <-ctx.Done():
				p.SetError(ctx.Err())
				return
			default:
			}

			v, err := fn(ctx)
			if err == nil {
				p.SetValue(v)
				return
			}
			lastErr = err

			if attempt == policy.MaxAttempts {
				break
			}
			if policy.OnRetry != nil {
				policy.OnRetry(attempt, err)
			}

			timer := time.NewTimer(policy.delayFor(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				p.SetError(ctx.Err())
				return
			case <-timer.C:
			}
		}
		p.SetError(fmt.Errorf("%w: %w", ErrMaxAttemptsReached, lastErr))
	}()

	return p.Future()
}
