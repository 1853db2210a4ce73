package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func noSleep(context.Context, time.Duration) {}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	p := Policy{MaxAttempts: 3, Sleep: noSleep}

	err := p.Do(context.Background(), func() error {
		calls++
		return errors.New("always fails")
	})
	if err == nil {
		t.Fatal("expected final error")
	}
	if calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", calls)
	}
}

func TestDoStopsOnSuccess(t *testing.T) {
	calls := 0
	p := Policy{MaxAttempts: 5, Sleep: noSleep}

	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestDoNonRetryableReturnsImmediately(t *testing.T) {
	calls := 0
	fatal := errors.New("fatal")
	p := Policy{
		MaxAttempts: 5,
		Sleep:       noSleep,
		Retryable:   func(err error) bool { return !errors.Is(err, fatal) },
	}

	err := p.Do(context.Background(), func() error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("expected the fatal error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls)
	}
}

func TestDoCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Policy{MaxAttempts: 3, Sleep: noSleep}
	err := p.Do(ctx, func() error { return errors.New("never reached") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestDoZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0
	p := Policy{Sleep: noSleep}
	_ = p.Do(context.Background(), func() error {
		calls++
		return errors.New("fail")
	})
	if calls != 1 {
		t.Fatalf("expected 1 attempt for zero-valued policy, got %d", calls)
	}
}

func TestDelayWithinJitterBand(t *testing.T) {
	p := Policy{BaseDelay: time.Second}
	low := time.Duration(0.8 * float64(time.Second))
	high := time.Duration(1.2 * float64(time.Second))

	for i := 0; i < 100; i++ {
		d := p.delay()
		if d < low || d > high {
			t.Fatalf("delay %v outside [%v, %v]", d, low, high)
		}
	}
}
