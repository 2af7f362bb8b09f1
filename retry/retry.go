package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultFastMaxAttempts = 3
	defaultFastDelay       = 200 * time.Millisecond
)

// PermanentError wraps a non-retryable error.
type PermanentError struct {
	err error
}

func (e PermanentError) Error() string {
	if e.err == nil {
		return "permanent error"
	}
	return e.err.Error()
}

func (e PermanentError) Unwrap() error { return e.err }

// Permanent marks an error as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	if IsPermanent(err) {
		return err
	}
	return PermanentError{err: err}
}

// IsPermanent reports whether err is marked as non-retryable.
func IsPermanent(err error) bool {
	var pe PermanentError
	if errors.As(err, &pe) {
		return true
	}

	var bpe *backoff.PermanentError
	return errors.As(err, &bpe)
}

// Policy is a fixed-delay retry schedule.
type Policy struct {
	MaxAttempts uint
	Delay       time.Duration
}

// Fast is the schedule used by RetryFast.
var Fast = Policy{MaxAttempts: defaultFastMaxAttempts, Delay: defaultFastDelay}

// RetryFast retries fn a small fixed number of times for short transient failures.
// It stops on context cancellation or permanent errors.
func RetryFast(ctx context.Context, fn func() error) error {
	return Do(ctx, Fast, fn)
}

// Do runs fn until it succeeds, returns a permanent error, p.MaxAttempts is
// reached or ctx is done.
func Do(ctx context.Context, p Policy, fn func() error) error {
	if p.MaxAttempts == 0 {
		p.MaxAttempts = 1
	}

	type unit struct{}
	op := func() (unit, error) {
		if err := ctx.Err(); err != nil {
			return unit{}, backoff.Permanent(err)
		}

		err := fn()
		if IsPermanent(err) {
			var bpe *backoff.PermanentError
			if errors.As(err, &bpe) {
				return unit{}, err
			}
			return unit{}, backoff.Permanent(err)
		}
		return unit{}, err
	}

	_, err := backoff.Retry(
		ctx,
		op,
		backoff.WithBackOff(backoff.NewConstantBackOff(p.Delay)),
		backoff.WithMaxTries(p.MaxAttempts),
	)
	return err
}
