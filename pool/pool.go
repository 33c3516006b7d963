package pool

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/everyday-items/asyncx/future"
	"github.com/everyday-items/asyncx/telemetry"
)

// Config controls Pool construction.
type Config struct {
	size     int
	recorder *telemetry.Recorder
}

// Option configures a Pool at construction time.
type Option func(*Config)

// WithTelemetry records submitted-task outcomes through r.
func WithTelemetry(r *telemetry.Recorder) Option {
	return func(c *Config) { c.recorder = r }
}

// Pool bounds concurrent task execution with a buffered channel used as a
// counting semaphore; it does not maintain a fixed set of worker goroutines
// the way a traditional worker pool does, since the task count here is
// small enough that per-task goroutines plus a concurrency cap are simpler
// and no less efficient.
type Pool struct {
	sem chan struct{}
	rec *telemetry.Recorder
}

// New creates a Pool allowing up to size tasks to run concurrently.
func New(size int, opts ...Option) *Pool {
	cfg := &Config{size: size}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.size <= 0 {
		cfg.size = 1
	}
	return &Pool{sem: make(chan struct{}, cfg.size), rec: cfg.recorder}
}

// acquire blocks until a concurrency slot is free.
func (p *Pool) acquire() {
	p.sem <- struct{}{}
}

// acquireContext blocks until a slot is free or ctx is done.
func (p *Pool) acquireContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release frees a slot. It panics if called more times than acquire.
func (p *Pool) release() {
	select {
	case <-p.sem:
	default:
		panic("pool: release without a matching acquire")
	}
}

// Available reports how many concurrency slots are currently free.
func (p *Pool) Available() int {
	return cap(p.sem) - len(p.sem)
}

// Submit blocks until a concurrency slot is free, then runs fn in its own
// goroutine and returns a Future for its result. A panic inside fn is
// captured and delivered as the future's error instead of crashing the
// pool.
func Submit[T any](p *Pool, fn func() (T, error)) future.Future[T] {
	pr := future.NewPromise[T](future.WithTelemetry(p.rec))
	p.acquire()
	go run(context.Background(), p, pr, uuid.NewString(), func(context.Context) (T, error) { return fn() })
	return pr.Future()
}

// SubmitContext is Submit with a context: acquiring a slot and running fn
// both respect ctx's cancellation.
func SubmitContext[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) future.Future[T] {
	pr := future.NewPromise[T](future.WithTelemetry(p.rec))
	taskID := uuid.NewString()
	if err := p.acquireContext(ctx); err != nil {
		telemetry.Default().With("task_id", taskID).Warn("pool: task dropped before acquiring a slot", "error", err)
		pr.SetError(err)
		return pr.Future()
	}
	go run(ctx, p, pr, taskID, fn)
	return pr.Future()
}

// run executes fn and resolves pr with its outcome. taskID identifies the
// task in logs; it has no bearing on scheduling. A per-task Logger carrying
// taskID is attached to ctx so fn itself can pull it back out via
// telemetry.FromContext instead of needing it threaded as a parameter.
func run[T any](ctx context.Context, p *Pool, pr future.Promise[T], taskID string, fn func(context.Context) (T, error)) {
	ctx = telemetry.ContextWithLogger(ctx, telemetry.Default().With("task_id", taskID))

	defer p.release()
	defer func() {
		if r := recover(); r != nil {
			p.rec.PoolTask("panic")
			telemetry.FromContext(ctx).Warn("pool: task panicked", "panic", r)
			if err, ok := r.(error); ok {
				pr.SetError(err)
			} else {
				pr.SetError(fmt.Errorf("pool: task panicked: %v", r))
			}
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		p.rec.PoolTask("ok")
		pr.SetError(err)
		return
	}
	p.rec.PoolTask("ok")
	pr.SetValue(v)
}
