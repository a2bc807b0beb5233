// pkg/retry/retry.go

// Package retry runs an operation with exponential backoff. Errors that are
// already classified by the application taxonomy are operational and are
// returned immediately without another attempt.
package retry

import (
	"context"
	"time"

	backoff "github.com/sethvargo/go-retry"

	"jobapp-back/internal/apperrors"
)

// Do invokes fn up to attempts times, doubling the wait between attempts
// starting from base.
func Do(ctx context.Context, attempts uint64, base time.Duration, fn func(ctx context.Context) error) error {
	b := backoff.WithMaxRetries(attempts, backoff.NewExponential(base))
	return backoff.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if apperrors.IsClassified(err) {
			return err
		}
		return backoff.RetryableError(err)
	})
}
