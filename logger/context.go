package logger

import (
	"context"

	"go.uber.org/zap"

	logctx "github.com/neocrym/log-with-context"
)

// loggerKey is the context key under which a per-context logger override travels.
type loggerKey struct{}

// ToContext returns a context carrying the given logger. Calls made with the
// returned context use it instead of the global logger.
func ToContext(parent context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(parent, loggerKey{}, l)
}

// FromContext returns the logger carried by ctx, falling back to the global
// logger when the context has none.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok && l != nil {
		return l
	}

	return global
}

// WithName returns a context whose logger is the current one extended with
// the given name segment.
func WithName(ctx context.Context, name string) context.Context {
	return ToContext(ctx, FromContext(ctx).Named(name))
}

// withContext attaches the effective log context carried by ctx to the given
// base logger. The stack is read live at every call; nothing is cached.
func withContext(base *zap.SugaredLogger, ctx context.Context) *zap.SugaredLogger {
	fields := logctx.Current(ctx)
	if len(fields) == 0 {
		return base
	}

	return base.With(logctx.Flatten(fields)...)
}

// mergedPairs merges the per-call key/value pairs on top of the effective
// context, so an explicit pair wins over any stacked frame on collision, and
// returns one flat deduplicated list.
func mergedPairs(ctx context.Context, kvs []any) []any {
	return logctx.Flatten(logctx.Merge(logctx.Current(ctx), kvs...))
}
