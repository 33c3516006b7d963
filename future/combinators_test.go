package future

import (
	"errors"
	"testing"
)

func TestAllCollectsInOrder(t *testing.T) {
	p1, p2, p3 := NewPromise[int](), NewPromise[int](), NewPromise[int]()
	go p1.SetValue(1)
	go p2.SetValue(2)
	go p3.SetValue(3)

	got, err := All(p1.Future(), p2.Future(), p3.Future())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAllReturnsFirstError(t *testing.T) {
	p1, p2 := NewPromise[int](), NewPromise[int]()
	boom := errors.New("boom")
	p1.SetValue(1)
	p2.SetError(boom)

	_, err := All(p1.Future(), p2.Future())
	if !errors.Is(err, boom) {
		t.Fatalf("All() error = %v, want %v", err, boom)
	}
}

func TestAnyReturnsFirstSuccess(t *testing.T) {
	p1, p2 := NewPromise[int](), NewPromise[int]()
	p1.SetError(errors.New("p1 failed"))
	p2.SetValue(99)

	v, err := Any(p1.Future(), p2.Future())
	if err != nil || v != 99 {
		t.Fatalf("Any() = (%d, %v), want (99, nil)", v, err)
	}
}

func TestAnyReturnsLastErrorWhenAllFail(t *testing.T) {
	p1, p2 := NewPromise[int](), NewPromise[int]()
	p1.SetError(errors.New("p1 failed"))
	p2.SetError(errors.New("p2 failed"))

	_, err := Any(p1.Future(), p2.Future())
	if err == nil {
		t.Fatal("Any() should return an error when every future fails")
	}
}

func TestAnyNoFutures(t *testing.T) {
	_, err := Any[int]()
	if !errors.Is(err, ErrNoFutures) {
		t.Fatalf("Any() error = %v, want %v", err, ErrNoFutures)
	}
}
