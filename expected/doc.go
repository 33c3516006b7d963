// Package expected provides Expected[T, E], a result-or-error sum type
// holding exactly one of a value of type T or an error of type E.
//
// It is the generalization of error-handling helpers like errorx.Result,
// parameterized over the error type instead of fixing it to error, so a
// caller can hold a richer error type than the built-in interface when it
// needs to (for example, to keep a domain-specific error enum out of the
// error-wrapping machinery in package errors).
//
// Basic usage:
//
//	x := expected.Value[int, error](42)
//	if x.IsValue() {
//	    fmt.Println(x.Value())
//	}
//
//	y := expected.FromUnexpected[int](expected.Unexpect(errors.New("boom")))
//	y.Deref() // panics with the held error
package expected
