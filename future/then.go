package future

import (
	"weak"

	"github.com/everyday-items/asyncx/expected"
)

// Then attaches a synchronous handler to f, returning a new Future that
// resolves with the handler's return value. If f resolves with an error,
// the handler does not run and the error propagates unchanged. If the
// handler panics, the panic is captured and delivered as the downstream
// error (an error value propagates as-is; anything else is wrapped in
// HandlerPanic).
//
// Attaching a second continuation to f (via Then, ThenAsync, or directly)
// panics ErrDuplicateContinuation.
func Then[T, R any](f Future[T], h func(T) R) Future[R] {
	down := newPrecursor[R](f.p.rec)
	f.p.setContinuation(func(ev expected.Expected[T, error]) {
		if ev.IsError() {
			down.setValue(expected.FromUnexpected[R](expected.Unexpect(ev.Error())))
			return
		}
		result, err := callSync(h, ev.Value())
		if err != nil {
			down.setValue(expected.FromUnexpected[R](expected.Unexpect(err)))
			return
		}
		down.setValue(expected.Value[R, error](result))
	})
	return Future[R]{p: down}
}

// ThenAsync attaches a handler that itself returns a Future, flattening
// the result: the returned Future resolves when the inner future does,
// not when the outer one does. This is the only place in the package a
// future's resolution is not driven directly by a SetValue/SetError call.
//
// The continuation registered on the inner future closes over only a weak
// reference to the downstream precursor; the strong references to it are
// the returned Future and f's continuation. If neither is still reachable
// by the time the inner one resolves, the downstream precursor may already
// have been collected, and then the result is silently discarded — the
// inner future's continuation does not keep the chain alive on its own.
func ThenAsync[T, R any](f Future[T], h func(T) Future[R]) Future[R] {
	down := newPrecursor[R](f.p.rec)
	f.p.setContinuation(func(ev expected.Expected[T, error]) {
		if ev.IsError() {
			down.setValue(expected.FromUnexpected[R](expected.Unexpect(ev.Error())))
			return
		}
		inner, err := callAsync(h, ev.Value())
		if err != nil {
			down.setValue(expected.FromUnexpected[R](expected.Unexpect(err)))
			return
		}

		weakDown := weak.Make(down)
		inner.p.setContinuation(func(innerEv expected.Expected[R, error]) {
			if target := weakDown.Value(); target != nil {
				target.setValue(innerEv)
			}
		})
	})
	return Future[R]{p: down}
}

func callSync[T, R any](h func(T) R, v T) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toHandlerError(r)
		}
	}()
	result = h(v)
	return result, nil
}

func callAsync[T, R any](h func(T) Future[R], v T) (inner Future[R], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toHandlerError(r)
		}
	}()
	inner = h(v)
	return inner, nil
}

func toHandlerError(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return &HandlerPanic{Value: r}
}
