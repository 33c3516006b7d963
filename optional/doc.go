// Package optional provides Optional[T], a minimal "value or nothing" slot.
//
// It exists for package future's internal precursor state, which needs to
// distinguish "not yet resolved" from any particular resolved value
// (including the zero value of T). Unlike a general-purpose Option type,
// dereferencing an empty Optional fails loudly rather than returning a
// zero value, matching the access the precursor relies on.
package optional
