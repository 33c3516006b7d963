package future

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSet is raised (via panic) when a Promise's SetValue or
	// SetError is called a second time.
	ErrDuplicateSet = errors.New("future: value already set")

	// ErrDuplicateContinuation is raised (via panic) when a second
	// continuation is attached to the same Future, through Then,
	// ThenAsync, or internal reuse of setContinuation.
	ErrDuplicateContinuation = errors.New("future: continuation already attached")
)

// HandlerPanic wraps a non-error panic value raised by a Then/ThenAsync
// handler, so it can still travel downstream as the chain's error. A
// handler that panics with an error value is not wrapped: that error
// propagates as-is, matching Expected.Deref's re-raise behavior.
type HandlerPanic struct {
	Value any
}

func (e *HandlerPanic) Error() string {
	return fmt.Sprintf("future: handler panicked: %v", e.Value)
}
