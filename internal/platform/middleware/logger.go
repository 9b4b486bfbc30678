package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

func Logger(logger zerolog.Logger, name string) Middleware {
	return func(next Operation) Operation {
		return func(ctx context.Context) error {
			start := time.Now()

			err := next(ctx)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt.
				Str("op_id", OperationIDFrom(ctx)).
				Str("op", name).
				Dur("latency", time.Since(start)).
				Msg("operation")

			return err
		}
	}
}
