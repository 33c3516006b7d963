package retryfuture

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGoSucceedsOnFirstAttempt(t *testing.T) {
	f := Go(context.Background(), NewPolicy(), func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if got := f.Get(); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
}

func TestGoRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	f := Go(context.Background(), NewPolicy(Attempts(3), Delay(time.Millisecond)), func(ctx context.Context) (int, error) {
		attempts++
		if attempts < 3 {
			return 0, errors.New("not yet")
		}
		return 7, nil
	})
	if got := f.Get(); got != 7 {
		t.Errorf("Get() = %d, want 7", got)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestGoExhaustsAttempts(t *testing.T) {
	boom := errors.New("boom")
	f := Go(context.Background(), NewPolicy(Attempts(2), Delay(time.Millisecond)), func(ctx context.Context) (int, error) {
		return 0, boom
	})
	_, err := f.TryGet()
	if !errors.Is(err, ErrMaxAttemptsReached) || !errors.Is(err, boom) {
		t.Fatalf("TryGet() error = %v, want wrapping %v and %v", err, ErrMaxAttemptsReached, boom)
	}
}

func TestGoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := Go(ctx, NewPolicy(Attempts(5), Delay(time.Second)), func(ctx context.Context) (int, error) {
		return 0, errors.New("should not matter")
	})
	_, err := f.TryGet()
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("TryGet() error = %v, want context.Canceled", err)
	}
}
