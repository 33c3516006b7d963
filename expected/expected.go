package expected

import "fmt"

// Unexpected tags an E value as the error side of an Expected, the way the
// C++ original disambiguates an error-typed constructor argument from a
// value-typed one. Go has no overload resolution to disambiguate, but the
// tag still reads clearly at call sites: expected.FromUnexpected(expected.Unexpect(err)).
type Unexpected[E any] struct {
	Err E
}

// Unexpect wraps err as the error side of an Expected.
func Unexpect[E any](err E) Unexpected[E] {
	return Unexpected[E]{Err: err}
}

// Expected holds exactly one of a value of type T or an error of type E.
type Expected[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Value constructs an Expected holding v.
func Value[T, E any](v T) Expected[T, E] {
	return Expected[T, E]{value: v, ok: true}
}

// FromUnexpected constructs an Expected holding u's error.
func FromUnexpected[T, E any](u Unexpected[E]) Expected[T, E] {
	return Expected[T, E]{err: u.Err}
}

// IsValue reports whether x holds a value.
func (x Expected[T, E]) IsValue() bool {
	return x.ok
}

// IsError reports whether x holds an error.
func (x Expected[T, E]) IsError() bool {
	return !x.ok
}

// Value returns the held value. It panics ErrBadAccess if x holds an error.
func (x Expected[T, E]) Value() T {
	if !x.ok {
		panic(ErrBadAccess)
	}
	return x.value
}

// Error returns the held error. It panics ErrBadAccess if x holds a value.
func (x Expected[T, E]) Error() E {
	if x.ok {
		panic(ErrBadAccess)
	}
	return x.err
}

// Get is the safe, ok-idiom accessor for the value side.
func (x Expected[T, E]) Get() (T, bool) {
	return x.value, x.ok
}

// Deref returns the value, or raises the error if x holds one. If E
// implements error, the held error is re-raised transparently (the same
// value a caller can recover and type-assert on); otherwise the error is
// wrapped in an UnhandledError so it still has something panic-shaped to
// carry.
func (x Expected[T, E]) Deref() T {
	if x.ok {
		return x.value
	}
	if err, ok := any(x.err).(error); ok {
		panic(err)
	}
	panic(&UnhandledError[E]{Err: x.err})
}

// String renders x for debugging.
func (x Expected[T, E]) String() string {
	if x.ok {
		return fmt.Sprintf("Value(%v)", x.value)
	}
	return fmt.Sprintf("Unexpected(%v)", x.err)
}
