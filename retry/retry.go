// Package retry wraps fallible functions so that a failing call is tried again,
// a bounded number of times, before the failure is handed to the caller.
//
// Attempts run back to back on the calling goroutine with no delay between them.
// Intermediate failures are swallowed; only the outcome of the whole call is
// reported.
package retry

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

var ErrMaxAttempts = fmt.Errorf("max attempts reached")

type Option func(*options)

type options struct {
	allErrors bool
}

// WithAllErrors reports every attempt's error instead of only the last one.
func WithAllErrors() Option {
	return func(o *options) {
		o.allErrors = true
	}
}

// Invoker calls a function until it succeeds or runs out of attempts.
// It is not safe for concurrent use.
type Invoker[T any] struct {
	fn          func() (T, error)
	maxAttempts int
	attempts    int
	options
}

// NewInvoker builds an Invoker. maxAttempts below 1 is treated as 1.
func NewInvoker[T any](fn func() (T, error), maxAttempts int, opts ...Option) *Invoker[T] {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	inv := &Invoker[T]{fn: fn, maxAttempts: maxAttempts}
	for _, opt := range opts {
		opt(&inv.options)
	}
	return inv
}

// Call runs fn until it succeeds, returning the first successful result.
// When every attempt fails the returned error wraps ErrMaxAttempts and the failure.
func (inv *Invoker[T]) Call() (T, error) {
	return inv.CallContext(context.Background())
}

// CallContext is Call, but gives up between attempts once ctx is done.
// The context error is then returned together with the last failure.
func (inv *Invoker[T]) CallContext(ctx context.Context) (T, error) {
	var zero T
	var failure error

	inv.attempts = 0
	for {
		if err := ctx.Err(); err != nil {
			return zero, multierr.Append(err, failure)
		}

		res, err := inv.fn()
		inv.attempts++
		if err == nil {
			return res, nil
		}

		if inv.allErrors {
			failure = multierr.Append(failure, err)
		} else {
			failure = err
		}

		if inv.attempts >= inv.maxAttempts {
			return zero, fmt.Errorf("%w: %d, %w", ErrMaxAttempts, inv.attempts, failure)
		}
	}
}

// Attempts returns how many times fn ran during the last call.
func (inv *Invoker[T]) Attempts() int {
	return inv.attempts
}

// Retry returns a function that calls fn up to maxAttempts times per invocation.
func Retry[T any](fn func() (T, error), maxAttempts int, opts ...Option) func() (T, error) {
	return NewInvoker(fn, maxAttempts, opts...).Call
}
