// Package diag carries the diagnostic logger in a context.Context.
// Non-fatal conditions, such as a safe conversion falling back to its
// default, are logged through it.
package diag

import (
	"context"

	"go.uber.org/zap"
)

type key int

//nolint:gochecknoglobals
var (
	// nop is returned when no logger has been stored.
	nop = zap.NewNop()

	// loggerKey is the key for *zap.Logger values in Contexts. It is
	// unexported; clients use WithLogger and Logger instead of using this
	// key directly.
	loggerKey key
)

// WithLogger returns a new Context that carries logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the *zap.Logger stored in ctx or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
			return logger
		}
	}
	return nop
}
