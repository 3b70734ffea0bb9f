// Package resilience retries remote calls that fail transiently.
package resilience

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Policy controls retry attempts and exponential backoff.
type Policy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// Initial is the delay before the first retry.
	Initial time.Duration
	// Max caps a single delay.
	Max time.Duration
	// Jitter spreads each delay by ±Jitter of its value.
	Jitter float64
}

// DefaultPolicy suits a single OCR request inside a per-file timeout.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: 3,
		Initial:  500 * time.Millisecond,
		Max:      5 * time.Second,
		Jitter:   0.2,
	}
}

func (p Policy) normalized() Policy {
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if p.Initial < 0 {
		p.Initial = 0
	}
	if p.Max <= 0 {
		p.Max = p.Initial
	}
	if p.Jitter < 0 {
		p.Jitter = 0
	}
	return p
}

// Do calls fn until it succeeds, returns a non-transient error, the
// attempts run out, or ctx is done. The last error is returned.
func Do[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	p = p.normalized()

	var zero T
	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		val, err := fn(ctx)
		if err == nil {
			return val, nil
		}
		lastErr = err

		if ctx.Err() != nil || !IsTransient(err) || attempt == p.Attempts {
			break
		}

		delay := p.backoff(attempt)
		zap.L().Warn("retrying operation",
			zap.String("operation", op),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, lastErr
		case <-timer.C:
		}
	}
	return zero, lastErr
}

// backoff returns the delay after the given failed attempt (1-based).
func (p Policy) backoff(attempt int) time.Duration {
	delay := float64(p.Initial) * math.Pow(2, float64(attempt-1))
	if delay > float64(p.Max) {
		delay = float64(p.Max)
	}
	if p.Jitter > 0 {
		delay += (rand.Float64()*2 - 1) * delay * p.Jitter
	}
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}
