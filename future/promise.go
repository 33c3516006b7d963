package future

import (
	"github.com/everyday-items/asyncx/expected"
	"github.com/everyday-items/asyncx/telemetry"
)

// Promise is the write side of a future/promise pair. It is set exactly
// once, by exactly one goroutine; setting it twice panics ErrDuplicateSet.
//
// A Promise may be freely copied and shared after it has been set — the
// underlying precursor is a shared pointer, so there is no move-only
// restriction to enforce the way the C++ original enforces one.
type Promise[T any] struct {
	p *precursor[T]
}

// NewPromise creates an unresolved Promise.
func NewPromise[T any](opts ...Option) Promise[T] {
	cfg := newConfig(opts...)
	return Promise[T]{p: newPrecursor[T](cfg.recorder)}
}

// NewPromiseWithTelemetry is NewPromise with a Recorder wired in.
func NewPromiseWithTelemetry[T any](r *telemetry.Recorder) Promise[T] {
	return NewPromise[T](WithTelemetry(r))
}

// SetValue resolves the promise's future with v. It panics
// ErrDuplicateSet if the promise was already resolved.
func (pr Promise[T]) SetValue(v T) {
	pr.p.setValue(expected.Value[T, error](v))
}

// SetError resolves the promise's future with err. It panics
// ErrDuplicateSet if the promise was already resolved.
func (pr Promise[T]) SetError(err error) {
	pr.p.setValue(expected.FromUnexpected[T](expected.Unexpect(err)))
}

// Future returns the read side of this promise. It may be called any
// number of times; every Future shares the same underlying precursor.
func (pr Promise[T]) Future() Future[T] {
	return Future[T]{p: pr.p}
}
