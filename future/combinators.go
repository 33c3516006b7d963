package future

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrNoFutures is returned by Any when called with no futures.
var ErrNoFutures = errors.New("future: Any requires at least one future")

// All waits for every future to resolve, returning their values in order.
// It returns the first error encountered (not necessarily from the first
// future to fail); the other futures are still awaited to completion
// before All returns, the same way errgroup.Group.Wait behaves.
func All[T any](futures ...Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	var g errgroup.Group
	for i, f := range futures {
		i, f := i, f
		g.Go(func() error {
			v, err := f.TryGet()
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Any returns the value of the first future to resolve without error. If
// every future fails, Any returns the last error observed. Futures that
// are still pending when one succeeds are left running; nothing in this
// package cancels them.
func Any[T any](futures ...Future[T]) (T, error) {
	var zero T
	if len(futures) == 0 {
		return zero, ErrNoFutures
	}

	type outcome struct {
		val T
		err error
	}
	ch := make(chan outcome, len(futures))
	for _, f := range futures {
		f := f
		go func() {
			v, err := f.TryGet()
			ch <- outcome{val: v, err: err}
		}()
	}

	var lastErr error
	for range futures {
		o := <-ch
		if o.err == nil {
			return o.val, nil
		}
		lastErr = o.err
	}
	return zero, lastErr
}
