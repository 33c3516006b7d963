// Package future provides a single-producer/single-consumer future/promise
// pair: Promise[T] is written to exactly once, Future[T] is read any number
// of times (blocking, timed, or via a Then/ThenAsync continuation chain).
//
// The core is executor-neutral: whichever goroutine calls SetValue or
// SetError also drives any attached continuation synchronously. Promise,
// Future, Then and ThenAsync never spawn a goroutine on your behalf; only
// the All and Any combinators start goroutines, one per future they wait
// on. Package pool and package retryfuture are the optional producers that
// run work in goroutines of their own.
//
// Basic usage:
//
//	p := future.NewPromise[int]()
//	f := p.Future()
//
//	go func() {
//	    p.SetValue(42)
//	}()
//
//	v := f.Get() // blocks until set, panics if SetError was called instead
//
// Chaining:
//
// A future accepts one continuation; chain further steps on the future
// that Then or ThenAsync returns.
//
//	doubled := future.Then(f, func(n int) int { return n * 2 })
//	chained := future.ThenAsync(doubled, func(n int) future.Future[int] {
//	    return fetchRelated(n)
//	})
package future
