package future

import (
	"testing"
	"testing/synctest"
	"time"
)

// TestSynctest_ResolveFromAnotherGoroutine exercises the core seed scenario:
// a consumer blocks on Get, a producer resolves the promise from a
// different goroutine after some delay, and the consumer wakes with the
// value. synctest's virtual clock makes the delay deterministic instead of
// a real sleep.
func TestSynctest_ResolveFromAnotherGoroutine(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := NewPromise[int]()
		f := p.Future()

		got := make(chan int, 1)
		go func() {
			got <- f.Get()
		}()

		go func() {
			time.Sleep(100 * time.Millisecond)
			p.SetValue(11)
		}()

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		select {
		case v := <-got:
			if v != 11 {
				t.Fatalf("Get() = %d, want 11", v)
			}
		default:
			t.Fatal("Get() had not returned after the bubble settled")
		}
	})
}

// TestSynctest_TimeoutLaw checks that a GetTimeout deadline shorter than the
// producer's delay expires first, and does not raise or block past it.
func TestSynctest_TimeoutLaw(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := NewPromise[int]()
		f := p.Future()

		go func() {
			time.Sleep(time.Second)
			p.SetValue(1)
		}()

		_, ok := f.GetTimeout(100 * time.Millisecond)
		if ok {
			t.Fatal("GetTimeout should expire before the producer resolves the promise")
		}
	})
}

// TestSynctest_GetTimeoutWinsWhenResolvedFirst checks the other side of the
// race: a producer that resolves before the deadline wins.
func TestSynctest_GetTimeoutWinsWhenResolvedFirst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := NewPromise[int]()
		f := p.Future()

		go func() {
			time.Sleep(10 * time.Millisecond)
			p.SetValue(5)
		}()

		v, ok := f.GetTimeout(time.Second)
		if !ok || v != 5 {
			t.Fatalf("GetTimeout() = (%d, %v), want (5, true)", v, ok)
		}
	})
}
