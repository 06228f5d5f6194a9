package caseshell

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/courtflow/case-aggregate-go/eventstore"
)

const (
	defaultMaxAttempts  = 6
	defaultBaseDelay    = 10 * time.Millisecond
	defaultJitterFactor = 0.3
)

// RetryStats reports how a retried operation went.
type RetryStats struct {
	Attempts   int
	TotalDelay time.Duration
}

type retryConfig struct {
	maxAttempts  int
	baseDelay    time.Duration
	jitterFactor float64
}

// RetryOption configures RetryWithExponentialBackoff.
type RetryOption func(*retryConfig)

// WithMaxAttempts sets how often the operation is tried in total.
func WithMaxAttempts(maxAttempts int) RetryOption {
	return func(c *retryConfig) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
	}
}

// WithBaseDelay sets the delay before the first retry, doubled on each further one.
func WithBaseDelay(baseDelay time.Duration) RetryOption {
	return func(c *retryConfig) {
		if baseDelay > 0 {
			c.baseDelay = baseDelay
		}
	}
}

// WithJitterFactor sets the random spread applied to each delay, 0 to 1.
func WithJitterFactor(jitterFactor float64) RetryOption {
	return func(c *retryConfig) {
		if jitterFactor >= 0 && jitterFactor <= 1 {
			c.jitterFactor = jitterFactor
		}
	}
}

// RetryWithExponentialBackoff runs the operation until it succeeds, fails with
// a non-retryable error, the context ends or the attempts are exhausted. Only
// concurrency conflicts are retryable, they resolve themselves once the
// competing append has landed and the stream was replayed again.
func RetryWithExponentialBackoff(ctx context.Context, operation func() error, options ...RetryOption) (RetryStats, error) {
	config := retryConfig{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
	}

	for _, option := range options {
		option(&config)
	}

	stats := RetryStats{}
	delay := config.baseDelay

	var lastErr error

	for attempt := 1; attempt <= config.maxAttempts; attempt++ {
		stats.Attempts = attempt

		lastErr = operation()
		if lastErr == nil {
			return stats, nil
		}

		if !errors.Is(lastErr, eventstore.ErrConcurrencyConflict) {
			return stats, lastErr
		}

		if attempt == config.maxAttempts {
			break
		}

		sleep := jitteredDelay(delay, config.jitterFactor)
		stats.TotalDelay += sleep
		delay *= 2

		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-time.After(sleep):
		}
	}

	return stats, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, stats.Attempts, lastErr)
}

func jitteredDelay(delay time.Duration, jitterFactor float64) time.Duration {
	if jitterFactor == 0 {
		return delay
	}

	jitter := 1 + jitterFactor*(2*rand.Float64()-1)

	return time.Duration(float64(delay) * jitter)
}
