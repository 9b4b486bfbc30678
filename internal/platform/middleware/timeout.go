package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrTimeout = errors.New("operation timed out")

// Timeout sets a deadline on each operation. A non-positive timeout disables
// it. Database calls observe the deadline through the context.
func Timeout(timeout time.Duration) Middleware {
	return func(next Operation) Operation {
		return func(ctx context.Context) error {
			if timeout <= 0 {
				return next(ctx)
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			err := next(ctx)
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w after %s: %w", ErrTimeout, timeout, err)
			}
			return err
		}
	}
}
