package retryfuture

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// ErrMaxAttemptsReached is the error future.Promise.SetError receives when
// every attempt is exhausted. The underlying producer's last error is
// wrapped in it.
var ErrMaxAttemptsReached = errors.New("retryfuture: max attempts reached")

// JitterType selects how backoff delays are randomized.
type JitterType int

const (
	// NoJitter applies no randomization.
	NoJitter JitterType = iota
	// FullJitter picks uniformly in [0, delay].
	FullJitter
	// EqualJitter picks uniformly in [delay/2, delay].
	EqualJitter
)

// Policy controls attempt count and backoff shape.
type Policy struct {
	MaxAttempts  int
	Delay        time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	JitterFactor float64
	JitterType   JitterType
	OnRetry      func(attempt int, err error)
}

// Option configures a Policy.
type Option func(*Policy)

// NewPolicy builds a Policy from opts, starting from sane exponential
// backoff defaults (3 attempts, 1s base delay, 2x multiplier, 30s cap).
func NewPolicy(opts ...Option) Policy {
	p := Policy{
		MaxAttempts: 3,
		Delay:       time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Attempts sets the maximum number of attempts (including the first).
func Attempts(n int) Option { return func(p *Policy) { p.MaxAttempts = n } }

// Delay sets the base delay before backoff multiplication.
func Delay(d time.Duration) Option { return func(p *Policy) { p.Delay = d } }

// MaxDelay caps the computed delay.
func MaxDelay(d time.Duration) Option { return func(p *Policy) { p.MaxDelay = d } }

// Multiplier sets the exponential backoff multiplier.
func Multiplier(m float64) Option { return func(p *Policy) { p.Multiplier = m } }

// WithJitter applies proportional jitter of the given factor (0.0-1.0) to
// every computed delay.
func WithJitter(factor float64) Option {
	return func(p *Policy) {
		p.JitterFactor = factor
	}
}

// WithJitterType selects a jitter shape instead of the proportional
// factor above.
func WithJitterType(t JitterType) Option { return func(p *Policy) { p.JitterType = t } }

// OnRetry sets a callback invoked before each retry delay, with the
// attempt number (1-based) and the error that triggered the retry.
func OnRetry(fn func(attempt int, err error)) Option {
	return func(p *Policy) { p.OnRetry = fn }
}

func (p Policy) delayFor(attempt int) time.Duration {
	multiplier := math.Pow(p.Multiplier, float64(attempt-1))
	if math.IsInf(multiplier, 0) || math.IsNaN(multiplier) {
		return p.jitter(p.MaxDelay)
	}
	delay := time.Duration(float64(p.Delay) * multiplier)
	if delay <= 0 || delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return p.jitter(delay)
}

func (p Policy) jitter(delay time.Duration) time.Duration {
	switch p.JitterType {
	case FullJitter:
		return time.Duration(rand.Float64() * float64(delay))
	case EqualJitter:
		half := float64(delay) / 2
		return time.Duration(half + rand.Float64()*half)
	default:
		if p.JitterFactor <= 0 {
			return delay
		}
		jitter := float64(delay) * p.JitterFactor * (rand.Float64()*2 - 1)
		result := float64(delay) + jitter
		if result < 0 {
			return 0
		}
		return time.Duration(result)
	}
}
