package future

import (
	"sync"
	"time"

	"github.com/everyday-items/asyncx/expected"
	"github.com/everyday-items/asyncx/optional"
	"github.com/everyday-items/asyncx/telemetry"
)

// continuation is the callback a consumer attaches to a precursor. It runs
// synchronously, on whichever goroutine resolves the precursor (or on the
// attaching goroutine, if the precursor is already resolved).
type continuation[T any] func(expected.Expected[T, error])

// precursor is the shared state behind a Promise/Future pair: at most one
// write (guarded by mu, observed as "set" via value.IsSome()), at most one
// attached continuation, and a done channel closed exactly once to wake
// any blocked Get/GetTimeout callers without re-acquiring the lock.
//
// Resolving and attaching both need mutual exclusion only around the
// few fields below; the continuation itself always runs outside the lock,
// so a handler that happens to touch an unrelated precursor can't deadlock
// against this one.
type precursor[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	value     optional.Optional[expected.Expected[T, error]]
	cont      continuation[T]
	createdAt time.Time
	rec       *telemetry.Recorder
}

func newPrecursor[T any](rec *telemetry.Recorder) *precursor[T] {
	return &precursor[T]{
		done:      make(chan struct{}),
		value:     optional.None[expected.Expected[T, error]](),
		createdAt: time.Now(),
		rec:       rec,
	}
}

// setValue resolves the precursor exactly once. A second call panics
// ErrDuplicateSet. If a continuation is already attached, it is invoked
// synchronously on this goroutine before done is closed.
func (p *precursor[T]) setValue(ev expected.Expected[T, error]) {
	p.mu.Lock()
	if p.value.IsSome() {
		p.mu.Unlock()
		p.rec.ProgrammingError("duplicate_set")
		telemetry.Warn("future: duplicate set on resolved precursor")
		panic(ErrDuplicateSet)
	}
	p.value = optional.Some(ev)
	cont := p.cont
	p.mu.Unlock()

	if cont != nil {
		cont(ev)
	}
	close(p.done)
	p.rec.ObserveResolution(ev.IsValue(), time.Since(p.createdAt))
}

// setContinuation attaches c exactly once. A second call panics
// ErrDuplicateContinuation. If the precursor is already resolved, c runs
// synchronously on this (the attaching) goroutine.
func (p *precursor[T]) setContinuation(c continuation[T]) {
	p.mu.Lock()
	if p.cont != nil {
		p.mu.Unlock()
		p.rec.ProgrammingError("duplicate_continuation")
		telemetry.Warn("future: duplicate continuation on precursor")
		panic(ErrDuplicateContinuation)
	}
	p.cont = c
	ev, already := p.value.Get()
	p.mu.Unlock()

	if already {
		c(ev)
	}
}

// get blocks until the precursor is resolved.
func (p *precursor[T]) get() expected.Expected[T, error] {
	<-p.done
	return p.value.Unwrap()
}

// getTimeout blocks until the precursor is resolved or d elapses, whichever
// comes first. The second return is false only on timeout.
func (p *precursor[T]) getTimeout(d time.Duration) (expected.Expected[T, error], bool) {
	select {
	case <-p.done:
		return p.value.Unwrap(), true
	case <-time.After(d):
		var zero expected.Expected[T, error]
		return zero, false
	}
}
