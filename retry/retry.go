// Package retry implements the bounded retry-with-jitter policy shared by
// the generation stages.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Policy retries an operation a fixed number of times, sleeping a jittered
// multiple of BaseDelay between attempts. Jitter spreads concurrent callers
// so retries don't land on the service in lockstep.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	JitterLow   float64 // defaults to 0.8
	JitterHigh  float64 // defaults to 1.2

	// Retryable reports whether an error is worth another attempt.
	// Nil means every error is retryable.
	Retryable func(error) bool

	// Sleep is swapped out in tests. Nil means a context-aware sleep.
	Sleep func(context.Context, time.Duration)
}

// Do runs fn up to MaxAttempts times. It returns nil on the first success,
// the last error once attempts are exhausted, and immediately on a
// non-retryable error or cancelled context.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = fn(); err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt < attempts {
			p.sleep(ctx, p.delay())
		}
	}
	return err
}

func (p Policy) delay() time.Duration {
	low, high := p.JitterLow, p.JitterHigh
	if low == 0 && high == 0 {
		low, high = 0.8, 1.2
	}
	jitter := low + rand.Float64()*(high-low)
	return time.Duration(float64(p.BaseDelay) * jitter)
}

func (p Policy) sleep(ctx context.Context, d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(ctx, d)
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
