package api

import (
	"context"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry defaults.
const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second
)

// RetryConfig configures the exponential backoff applied to retryable
// failures. The first attempt is never delayed; the wait before physical
// attempt k+1 is BaseDelay * 2^k.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt, so the
	// maximum number of physical sends is MaxRetries+1.
	MaxRetries int
	// BaseDelay is the wait before the second physical attempt.
	BaseDelay time.Duration
	// Jitter is the randomization factor (0.0 to 1.0) applied to each delay.
	// Zero keeps the schedule deterministic.
	Jitter float64
}

// DefaultRetryConfig returns the default retry configuration: 3 retries,
// 1s base delay, no jitter.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
	}
}

// newBackOff returns a fresh delay schedule for one logical request.
// The schedule is uncapped; MaxRetries is the only ceiling.
func (r RetryConfig) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = r.Jitter
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// waitFor blocks for the given delay or until the context is done.
func waitFor(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
