package utils

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

var errAttemptRejected = errors.New("attempt rejected")

// Retry calls op at most attempts times, one immediately after the other,
// and stops at the first result for which ok reports true. A non-nil error
// from op counts as a failed attempt.
//
// When every attempt fails, the result and error of the last attempt are
// returned unchanged so the caller can inspect the final response. A
// cancelled ctx stops the loop and its error is returned instead.
//
// attempts below 1 are treated as 1.
func Retry[T any](
	ctx context.Context,
	attempts int,
	op func(ctx context.Context) (T, error),
	ok func(T) bool,
) (T, error) {
	if attempts < 1 {
		attempts = 1
	}

	var (
		last    T
		lastErr error
	)

	backoff := retry.WithMaxRetries(uint64(attempts-1), immediate())
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		last, lastErr = op(ctx)
		if lastErr == nil && ok(last) {
			return nil
		}
		return retry.RetryableError(errAttemptRejected)
	})

	switch {
	case err == nil, errors.Is(err, errAttemptRejected):
		return last, lastErr
	default:
		return last, err
	}
}

// immediate is a zero-delay backoff. retry.NewConstant rejects a zero
// duration.
func immediate() retry.Backoff {
	return retry.BackoffFunc(func() (time.Duration, bool) {
		return 0, false
	})
}
