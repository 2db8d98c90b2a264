// ABOUTME: This file tests the retry mechanism with exponential backoff and jitter
// ABOUTME: Covers attempt accounting, classification and context cancellation
package retry

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only errors in tests
	}))
}

func testConfig() Config {
	return Config{
		MaxAttempts:   3,
		BaseDelay:     1 * time.Millisecond,
		MaxDelay:      10 * time.Millisecond,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}
}

var errTransient = errors.New("transient failure")

func transientOnly(err error) bool {
	return errors.Is(err, errTransient)
}

func TestRetrier_Do(t *testing.T) {
	tests := map[string]struct {
		operation     func() func() error
		expectedCalls int
		wantErr       bool
	}{
		"success on first attempt": {
			operation: func() func() error {
				return func() error { return nil }
			},
			expectedCalls: 1,
		},
		"success on third attempt": {
			operation: func() func() error {
				attempt := 0
				return func() error {
					attempt++
					if attempt < 3 {
						return errTransient
					}
					return nil
				}
			},
			expectedCalls: 3,
		},
		"failure after max attempts": {
			operation: func() func() error {
				return func() error { return errTransient }
			},
			expectedCalls: 3,
			wantErr:       true,
		},
		"non-retryable error fails immediately": {
			operation: func() func() error {
				return func() error { return errors.New("permanent failure") }
			},
			expectedCalls: 1,
			wantErr:       true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			retrier := NewRetrier(testConfig(), transientOnly, testLogger())

			calls := 0
			op := tc.operation()
			err := retrier.Do(context.Background(), func() error {
				calls++
				return op()
			})

			assert.Equal(t, tc.expectedCalls, calls)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_Do_ErrorWrapping(t *testing.T) {
	t.Run("exhausted retries wrap the last error with attempt count", func(t *testing.T) {
		retrier := NewRetrier(testConfig(), transientOnly, testLogger())

		err := retrier.Do(context.Background(), func() error { return errTransient })

		require.Error(t, err)
		assert.ErrorIs(t, err, errTransient)
		assert.True(t, strings.Contains(err.Error(), "after 3 attempts"))
	})

	t.Run("non-retryable error is returned unwrapped", func(t *testing.T) {
		permanent := errors.New("credentials rejected")
		retrier := NewRetrier(testConfig(), transientOnly, testLogger())

		err := retrier.Do(context.Background(), func() error { return permanent })

		assert.Equal(t, permanent, err)
	})
}

func TestRetrier_Do_ContextCancellation(t *testing.T) {
	t.Run("cancellation during backoff stops retrying", func(t *testing.T) {
		config := testConfig()
		config.BaseDelay = 500 * time.Millisecond
		config.MaxDelay = time.Second
		retrier := NewRetrier(config, transientOnly, testLogger())

		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := retrier.Do(ctx, func() error {
			calls++
			return errTransient
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestRetrier_CalculateDelay(t *testing.T) {
	t.Run("delay grows exponentially up to the cap", func(t *testing.T) {
		config := Config{
			MaxAttempts:   5,
			BaseDelay:     100 * time.Millisecond,
			MaxDelay:      300 * time.Millisecond,
			BackoffFactor: 2.0,
			JitterFactor:  0, // deterministic for the assertion
		}
		retrier := NewRetrier(config, nil, testLogger())

		assert.Equal(t, 100*time.Millisecond, retrier.calculateDelay(1))
		assert.Equal(t, 200*time.Millisecond, retrier.calculateDelay(2))
		assert.Equal(t, 300*time.Millisecond, retrier.calculateDelay(3))
		assert.Equal(t, 300*time.Millisecond, retrier.calculateDelay(4))
	})
}
