package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestWithRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), fastRetryConfig(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	boom := errors.New("still broken")
	calls := 0
	err := withRetry(context.Background(), fastRetryConfig(), func(ctx context.Context) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestWithRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := withRetry(ctx, fastRetryConfig(), func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "canceled context must not be retried")
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	cfg := RetryConfig{
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2.0,
	}

	// Jitter is ±20%, so assert on bounds rather than exact values.
	first := backoff(cfg, 0)
	assert.InDelta(t, 100*time.Millisecond, first, float64(20*time.Millisecond))

	capped := backoff(cfg, 5)
	assert.LessOrEqual(t, capped, 360*time.Millisecond)
	assert.GreaterOrEqual(t, capped, 240*time.Millisecond)
}
