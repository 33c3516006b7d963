package expected

import "errors"

// ErrBadAccess is raised (via panic) when Value is called on an
// error-holding Expected, or Error is called on a value-holding one.
var ErrBadAccess = errors.New("expected: bad access")

// UnhandledError wraps an error value of a type that does not itself
// implement the error interface, so Deref has something concrete to panic
// with. Most instantiations use E = error and never see this type.
type UnhandledError[E any] struct {
	Err E
}

func (e *UnhandledError[E]) Error() string {
	return "expected: unhandled error value"
}

// Unwrap lets errors.As/errors.Is reach into the raw E value when E itself
// is addressable as an error through some other path.
func (e *UnhandledError[E]) Unwrap() error {
	if err, ok := any(e.Err).(error); ok {
		return err
	}
	return nil
}
