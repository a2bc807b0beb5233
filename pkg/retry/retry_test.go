// pkg/retry/retry_test.go
package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobapp-back/internal/apperrors"
)

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), 5, time.Millisecond, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnClassifiedError(t *testing.T) {
	attempts := 0
	opErr := apperrors.NotFound("submission")
	err := Do(context.Background(), 5, time.Millisecond, func(ctx context.Context) error {
		attempts++
		return opErr
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "operational errors must not be retried")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDoExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), 2, time.Millisecond, func(ctx context.Context) error {
		attempts++
		return errors.New("still broken")
	})
	require.Error(t, err)
	assert.Equal(t, 3, attempts) // initial attempt plus two retries
}

func TestDoRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, 5, 10*time.Millisecond, func(ctx context.Context) error {
		return errors.New("transient")
	})
	require.Error(t, err)
}
