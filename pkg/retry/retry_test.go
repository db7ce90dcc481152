package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	t.Run("succeeds first attempt", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), testConfig(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after retries", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), testConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), testConfig(), func() error {
			calls++
			return errors.New("connection refused")
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error stops immediately", func(t *testing.T) {
		cfg := testConfig()
		cfg.RetryableErrors = []string{"connection refused"}

		calls := 0
		err := Do(context.Background(), cfg, func() error {
			calls++
			return errors.New("syntax error")
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Do(ctx, testConfig(), func() error {
			return errors.New("connection refused")
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid max attempts", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxAttempts = 0

		err := Do(context.Background(), cfg, func() error { return nil })
		assert.Error(t, err)
	})
}

func TestDoWithResult(t *testing.T) {
	t.Run("returns result on success", func(t *testing.T) {
		result, err := DoWithResult(context.Background(), testConfig(), func() (string, error) {
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
	})

	t.Run("returns zero value on failure", func(t *testing.T) {
		result, err := DoWithResult(context.Background(), testConfig(), func() (int, error) {
			return 42, errors.New("boom")
		})

		require.Error(t, err)
		assert.Zero(t, result)
	})
}

func TestCalculateDelay(t *testing.T) {
	cfg := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, 100*time.Millisecond, calculateDelay(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateDelay(1, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateDelay(2, cfg))
	assert.Equal(t, time.Second, calculateDelay(10, cfg), "delay is capped at MaxDelay")
	assert.Equal(t, 100*time.Millisecond, calculateDelay(-1, cfg), "negative attempt treated as zero")
}

func TestIsRetryableError(t *testing.T) {
	t.Run("nil error is not retryable", func(t *testing.T) {
		assert.False(t, IsRetryableError(nil, DefaultConfig()))
	})

	t.Run("empty patterns retry everything", func(t *testing.T) {
		assert.True(t, IsRetryableError(errors.New("anything"), DefaultConfig()))
	})

	t.Run("pattern match is case insensitive", func(t *testing.T) {
		cfg := ConnectConfig()
		assert.True(t, IsRetryableError(errors.New("dial tcp: Connection Refused"), cfg))
		assert.True(t, IsRetryableError(errors.New("database is locked"), cfg))
		assert.False(t, IsRetryableError(errors.New("unique constraint failed"), cfg))
	})
}
