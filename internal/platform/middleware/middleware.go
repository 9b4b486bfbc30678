// Package middleware wraps command operations with cross-cutting behavior:
// operation ids, deadlines, logging and panic recovery.
package middleware

import (
	"context"

	"github.com/google/uuid"
)

// Operation is one unit of work started from the command line.
type Operation func(ctx context.Context) error

type Middleware func(next Operation) Operation

// Chain wraps op so that the first middleware is the outermost.
func Chain(op Operation, mws ...Middleware) Operation {
	for i := len(mws) - 1; i >= 0; i-- {
		op = mws[i](op)
	}
	return op
}

type opIDKey struct{}

// OperationID tags the context with a fresh id unless one is already set.
func OperationID() Middleware {
	return func(next Operation) Operation {
		return func(ctx context.Context) error {
			if OperationIDFrom(ctx) == "" {
				ctx = context.WithValue(ctx, opIDKey{}, uuid.New().String())
			}
			return next(ctx)
		}
	}
}

func OperationIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(opIDKey{}).(string)
	return id
}
