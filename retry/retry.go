// ABOUTME: This file implements exponential backoff retry with jitter
// ABOUTME: Used for outbound feed fetches where transient failures are common
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// RetryConfig controls the backoff schedule.
type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterFactor  float64
}

// ErrorClassifier decides whether an error is worth retrying. A nil classifier
// retries nothing.
type ErrorClassifier func(error) bool

// Retrier runs operations with bounded retries and exponential backoff.
type Retrier struct {
	config      RetryConfig
	isRetryable ErrorClassifier
	logger      *slog.Logger
}

// NewRetrier creates a new retrier.
func NewRetrier(config RetryConfig, classifier ErrorClassifier, logger *slog.Logger) *Retrier {
	return &Retrier{
		config:      config,
		isRetryable: classifier,
		logger:      logger,
	}
}

// Do runs the operation until it succeeds, exhausts MaxAttempts, hits a
// non-retryable error, or the context is cancelled during a backoff wait.
func (r *Retrier) Do(ctx context.Context, operation func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				r.logger.InfoContext(ctx, "operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		retryable := r.isRetryable != nil && r.isRetryable(lastErr)

		r.logger.WarnContext(ctx, "operation attempt failed",
			"attempt", attempt,
			"error", lastErr,
			"retryable", retryable,
		)

		if attempt == r.config.MaxAttempts || !retryable {
			return fmt.Errorf("operation failed after %d attempts: %w", attempt, lastErr)
		}

		delay := r.calculateDelay(attempt)

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", r.config.MaxAttempts, lastErr)
}

// calculateDelay returns the backoff for the given attempt: exponential,
// capped at MaxDelay, with symmetric jitter to avoid synchronized retries.
func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	jitter := 1.0 + (rand.Float64()-0.5)*r.config.JitterFactor
	delay *= jitter

	return time.Duration(delay)
}
