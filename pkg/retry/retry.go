// Package retry provides a generic retry wrapper with exponential backoff
// and jitter, used around every remote call the pipeline makes (AI providers,
// host API, host CLI).
//
// Each invocation carries its own attempt counter; there is no shared state
// between calls.
package retry

import (
	"context"
	"math/rand"
	"strings"
	"time"
)

const (
	// DefaultMaxAttempts bounds the number of tries, first attempt included
	DefaultMaxAttempts = 3

	// DefaultInitialDelay is the backoff base for the first retry
	DefaultInitialDelay = time.Second

	// DefaultMaxDelay caps the backoff delay
	DefaultMaxDelay = 30 * time.Second

	// jitterSpread is the upper bound of the uniform jitter factor
	jitterSpread = 0.3
)

// Options configures one retried call site. Constructed per call, never
// shared mutable state.
type Options struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration

	// Retryable classifies errors worth another attempt. Nil selects
	// DefaultRetryable.
	Retryable func(error) bool
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = DefaultInitialDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = DefaultMaxDelay
	}
	if o.Retryable == nil {
		o.Retryable = DefaultRetryable
	}
	return o
}

// retryableFragments are matched case-insensitively against error text.
// Upstream APIs do not expose structured error codes uniformly, so substring
// classification is the pragmatic default; call sites may substitute a richer
// predicate through Options.Retryable.
var retryableFragments = []string{
	"rate limit",
	"rate_limit",
	"too many requests",
	"429",
	"timeout",
	"timed out",
	"deadline exceeded",
	"connection reset",
	"connection refused",
	"500",
	"502",
	"503",
	"504",
	"internal server error",
	"bad gateway",
	"service unavailable",
	"overloaded",
	"at capacity",
}

// DefaultRetryable matches rate-limiting, timeout/connection-reset,
// 5xx-class and overload signals in the error text.
func DefaultRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, frag := range retryableFragments {
		if strings.Contains(msg, frag) {
			return true
		}
	}
	return false
}

// Do executes op, retrying per opts. Non-retryable errors are returned
// immediately; after exhausting attempts the last error is returned.
func Do(ctx context.Context, op func(context.Context) error, opts Options) error {
	opts = opts.withDefaults()
	var last error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		last = op(ctx)
		if last == nil {
			return nil
		}
		if !opts.Retryable(last) || attempt == opts.MaxAttempts {
			return last
		}
		select {
		case <-time.After(backoffDelay(attempt, opts)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return last
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, op func(context.Context) (T, error), opts Options) (T, error) {
	var out T
	err := Do(ctx, func(ctx context.Context) error {
		var opErr error
		out, opErr = op(ctx)
		return opErr
	}, opts)
	return out, err
}

// backoffDelay computes min(initial * 2^(attempt-1) * (1 + jitter), max)
// with jitter drawn uniformly from [0, 0.3).
func backoffDelay(attempt int, opts Options) time.Duration {
	base := float64(opts.InitialDelay) * float64(uint(1)<<uint(attempt-1))
	jittered := base * (1 + rand.Float64()*jitterSpread)
	if max := float64(opts.MaxDelay); jittered > max {
		jittered = max
	}
	return time.Duration(jittered)
}
