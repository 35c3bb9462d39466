// Package ctxlog carries the run's *slog.Logger through context.Context so
// the CLI, the run-file loader and the app share one configured logger.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the attached logger, or slog.Default when there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(key{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
