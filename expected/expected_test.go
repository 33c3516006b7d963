package expected

import (
	"errors"
	"testing"
)

func TestValueAccess(t *testing.T) {
	x := Value[int, error](42)
	if !x.IsValue() || x.IsError() {
		t.Fatal("Value should be a value-holding Expected")
	}
	if got := x.Value(); got != 42 {
		t.Errorf("Value() = %d, want 42", got)
	}
	if v, ok := x.Get(); !ok || v != 42 {
		t.Errorf("Get() = (%d, %v), want (42, true)", v, ok)
	}
}

func TestErrorAccess(t *testing.T) {
	err := errors.New("boom")
	x := FromUnexpected[int](Unexpect[error](err))
	if x.IsValue() || !x.IsError() {
		t.Fatal("FromUnexpected should be an error-holding Expected")
	}
	if got := x.Error(); got != err {
		t.Errorf("Error() = %v, want %v", got, err)
	}
}

func TestBadAccessPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrBadAccess {
			t.Fatalf("Error() on a value should panic ErrBadAccess, got %v", r)
		}
	}()
	Value[int, error](1).Error()
}

func TestDerefValue(t *testing.T) {
	if got := Value[string, error]("ok").Deref(); got != "ok" {
		t.Errorf("Deref() = %q, want %q", got, "ok")
	}
}

func TestDerefReRaisesError(t *testing.T) {
	want := errors.New("network down")
	x := FromUnexpected[int](Unexpect[error](want))

	defer func() {
		r := recover()
		got, ok := r.(error)
		if !ok || got != want {
			t.Fatalf("Deref() should re-raise the held error transparently, got %v", r)
		}
	}()
	x.Deref()
}

type code int

func TestDerefWrapsNonErrorE(t *testing.T) {
	x := FromUnexpected[int](Unexpect(code(404)))

	defer func() {
		r := recover()
		wrapped, ok := r.(*UnhandledError[code])
		if !ok || wrapped.Err != code(404) {
			t.Fatalf("Deref() should wrap a non-error E in UnhandledError, got %v", r)
		}
	}()
	x.Deref()
}
