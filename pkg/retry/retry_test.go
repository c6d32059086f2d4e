package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("503 service unavailable")

func fastOptions() Options {
	return Options{
		MaxAttempts:  3,
		InitialDelay: time.Microsecond,
		MaxDelay:     time.Millisecond,
	}
}

func TestDoSucceedsAfterRetryableFailures(t *testing.T) {
	attempts := 0
	got, err := DoValue(context.Background(), func(context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errTransient
		}
		return "ok", nil
	}, fastOptions())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, attempts)
}

func TestDoNonRetryableFailsImmediately(t *testing.T) {
	fatal := errors.New("schema mismatch")
	attempts := 0
	err := Do(context.Background(), func(context.Context) error {
		attempts++
		return fatal
	}, fastOptions())
	assert.Equal(t, fatal, err)
	assert.Equal(t, 1, attempts)
}

func TestDoExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func(context.Context) error {
		attempts++
		return errTransient
	}, fastOptions())
	assert.Equal(t, errTransient, err)
	assert.Equal(t, 3, attempts)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := Do(ctx, func(context.Context) error {
		attempts++
		cancel()
		return errTransient
	}, Options{MaxAttempts: 5, InitialDelay: time.Hour, MaxDelay: time.Hour})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestBackoffDelayBounds(t *testing.T) {
	opts := Options{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Hour}
	for attempt := 1; attempt <= 4; attempt++ {
		base := float64(opts.InitialDelay) * float64(uint(1)<<uint(attempt-1))
		for i := 0; i < 50; i++ {
			d := float64(backoffDelay(attempt, opts))
			assert.GreaterOrEqual(t, d, base, "attempt %d", attempt)
			assert.Less(t, d, base*1.3, "attempt %d", attempt)
		}
	}
}

func TestBackoffDelayCapped(t *testing.T) {
	opts := Options{InitialDelay: time.Second, MaxDelay: 2 * time.Second}
	d := backoffDelay(10, opts)
	assert.Equal(t, 2*time.Second, d)
}

func TestDefaultRetryable(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"429 Too Many Requests", true},
		{"Rate limit exceeded", true},
		{"context deadline exceeded", true},
		{"read tcp: connection reset by peer", true},
		{"anthropic: 529 overloaded_error: Overloaded", true},
		{"server is at capacity", true},
		{"502 Bad Gateway", true},
		{"invalid api key", false},
		{"response does not conform to schema", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultRetryable(errors.New(tt.msg)), tt.msg)
	}
	assert.False(t, DefaultRetryable(nil))
}
