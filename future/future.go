package future

import (
	"fmt"
	"time"
)

// Future is the read side of a future/promise pair.
type Future[T any] struct {
	p *precursor[T]
}

// Get blocks until the future is resolved. If it was resolved with a
// value, Get returns it; if it was resolved with an error, Get panics with
// that error (a transparent re-raise, per expected.Expected.Deref).
func (f Future[T]) Get() T {
	return f.p.get().Deref()
}

// TryGet is Get without the panic: it recovers a raised error and returns
// it as a normal (T, error) pair. A raised value that is not an error is
// formatted into one.
func (f Future[T]) TryGet() (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("future: %v", r)
			}
		}
	}()
	val = f.Get()
	return val, nil
}

// GetTimeout blocks until the future is resolved or d elapses. If resolved
// within d, it behaves like Get (including raising a held error); the
// second return is false only if d elapsed first, in which case the first
// return is the zero value of T.
func (f Future[T]) GetTimeout(d time.Duration) (T, bool) {
	ev, ok := f.p.getTimeout(d)
	if !ok {
		var zero T
		return zero, false
	}
	return ev.Deref(), true
}
