package settlement

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mmynk/settleup/internal/storage"
)

// Retrier retries cache writes with exponential backoff.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          *slog.Logger
}

// NewRetrier creates a retrier that makes at most maxRetries additional attempts.
func NewRetrier(maxRetries int, initialInterval time.Duration) *Retrier {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Retrier{
		maxRetries:      maxRetries,
		initialInterval: initialInterval,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  5 * time.Second,
		logger:          slog.Default(),
	}
}

// Retry executes operation until it succeeds, fails permanently or retries run out.
// Missing groups and canceled contexts are never retried.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		if !isRetryable(ctx, err) {
			return backoff.Permanent(err)
		}

		retryCount++
		if retryCount > r.maxRetries {
			return backoff.Permanent(err)
		}

		r.logger.Warn("cache write failed, retrying",
			"error", err,
			"retry", retryCount,
		)

		return err
	}, backoff.WithContext(b, ctx))
}

func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
