package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

var ErrPanic = errors.New("internal error")

func Recovery(logger zerolog.Logger) Middleware {
	return func(next Operation) Operation {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var stack [4096]byte
					n := runtime.Stack(stack[:], false)

					logger.Error().
						Str("op_id", OperationIDFrom(ctx)).
						Str("panic", fmt.Sprintf("%v", r)).
						Str("stack", string(stack[:n])).
						Msg("panic recovered")

					err = fmt.Errorf("%w: %v", ErrPanic, r)
				}
			}()
			return next(ctx)
		}
	}
}
