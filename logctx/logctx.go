// Package logctx carries a request-scoped slog.Logger through context.
package logctx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into stores the logger in the context.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger from the context, or slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// With is From tagged with the operation name plus any extra key/value
// pairs, the way service methods start their logging.
func With(ctx context.Context, op string, args ...any) *slog.Logger {
	return From(ctx).With(append([]any{"op", op}, args...)...)
}
