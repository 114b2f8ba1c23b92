package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mieltoinc/yclistdedalus/internal/retry"
)

func fastConfig(attempts int) retry.Config {
	return retry.Config{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fastConfig(3), func(context.Context) error {
		calls++
		if calls < 3 {
			return retry.Transient(errors.New("503 service unavailable"))
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	t.Parallel()

	permanent := errors.New("404 not found")
	calls := 0
	err := retry.Do(context.Background(), fastConfig(5), func(context.Context) error {
		calls++
		return permanent
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	var retried []int
	cfg := fastConfig(2)
	cfg.OnRetry = func(attempt int, _ time.Duration, _ error) { retried = append(retried, attempt) }

	err := retry.Do(context.Background(), cfg, func(context.Context) error {
		return retry.Transient(errors.New("boom"))
	})

	require.ErrorIs(t, err, retry.ErrMaxAttemptsExceeded)
	assert.Equal(t, []int{1}, retried)
}

func TestDo_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.Do(ctx, fastConfig(3), func(context.Context) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestConfig_Backoff(t *testing.T) {
	t.Parallel()

	cfg := retry.Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}
	assert.Equal(t, 100*time.Millisecond, cfg.Backoff(1))
	assert.Equal(t, 200*time.Millisecond, cfg.Backoff(2))
	assert.Equal(t, 400*time.Millisecond, cfg.Backoff(3))
	assert.Equal(t, time.Second, cfg.Backoff(10))
}

func TestDefaultIsRetryable(t *testing.T) {
	t.Parallel()

	assert.False(t, retry.DefaultIsRetryable(nil))
	assert.False(t, retry.DefaultIsRetryable(errors.New("plain")))
	assert.False(t, retry.DefaultIsRetryable(context.Canceled))
	assert.True(t, retry.DefaultIsRetryable(retry.Transient(errors.New("x"))))
}
