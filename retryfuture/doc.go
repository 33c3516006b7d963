// Package retryfuture runs a producer function with exponential backoff
// and jitter, publishing its eventual outcome to a future.Future.
//
// It is not part of the core future/promise state machine; it is a
// producer built on top of it, the same way a connection pool or an HTTP
// client would be — package future never requires a retry policy to
// resolve a promise.
//
// Basic usage:
//
//	f := retryfuture.Go(ctx, retryfuture.NewPolicy(
//	    retryfuture.Attempts(5),
//	    retryfuture.WithJitter(0.3),
//	), func(ctx context.Context) (*Response, error) {
//	    return client.Do(ctx, req)
//	})
//	resp := f.Get()
package retryfuture
