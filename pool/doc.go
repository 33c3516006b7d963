// Package pool provides a minimal bounded goroutine pool that submits work
// and hands back a future.Future for the result.
//
// It exists to demonstrate package future being driven by a concrete
// executor without the core depending on one: Submit spawns a
// goroutine (bounded by a semaphore, not a fixed worker-goroutine set),
// runs the task, and resolves a promise with its result or a captured
// panic.
//
// This intentionally does not carry over auto-scaling, work-stealing,
// priority queues, or lifecycle hooks from the pool implementation it is
// descended from: none of those have a caller here, and future's design is
// explicitly executor-neutral.
package pool
