package upstream

import (
	"context"
	"fmt"
	"time"
)

// CallWithDeadline runs fn under its own deadline d, derived from ctx.
// If fn has not returned when the deadline passes, CallWithDeadline returns
// immediately with an error wrapping context.DeadlineExceeded; fn's context
// is cancelled and its late result is discarded. Cancellation of ctx itself
// is reported as ctx.Err().
func CallWithDeadline[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		v, err := fn(callCtx)
		done <- outcome{val: v, err: err}
	}()

	var zero T
	select {
	case o := <-done:
		if o.err != nil && ctx.Err() == nil && callCtx.Err() == context.DeadlineExceeded {
			return zero, timeoutError(d, o.err)
		}
		return o.val, o.err
	case <-callCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, timeoutError(d, context.DeadlineExceeded)
	}
}

func timeoutError(d time.Duration, cause error) error {
	if cause == context.DeadlineExceeded {
		return fmt.Errorf("no response within %s: %w", d, context.DeadlineExceeded)
	}
	return fmt.Errorf("no response within %s: %w: %w", d, context.DeadlineExceeded, cause)
}
