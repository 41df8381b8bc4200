package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a name-addressable wrapper around one underlying zap logger. It
// holds no context of its own: every call reads the live stack from the
// passed context, so multiple Logger instances in the same task observe the
// same frames.
type Logger struct {
	// base is the wrapped emission target.
	base *zap.SugaredLogger
}

// NewLogger returns a Logger named after the given component, emitting
// through the global logger.
func NewLogger(name string) *Logger {
	return Wrap(Global().Named(name))
}

// Wrap returns a Logger emitting through the provided zap logger.
func Wrap(base *zap.SugaredLogger) *Logger {
	return &Logger{base: base}
}

// Named returns a child Logger with the given name segment appended.
func (l *Logger) Named(name string) *Logger {
	return Wrap(l.base.Named(name))
}

// Debug writes a debug level message carrying the effective log context.
func (l *Logger) Debug(ctx context.Context, args ...any) {
	withContext(l.base, ctx).Debug(args...)
}

// Debugf writes a formatted debug level message carrying the effective log context.
func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	withContext(l.base, ctx).Debugf(format, args...)
}

// DebugKV writes a message and key-value pairs at the debug level.
func (l *Logger) DebugKV(ctx context.Context, message string, kvs ...any) {
	l.base.Debugw(message, mergedPairs(ctx, kvs)...)
}

// Info writes an information level message carrying the effective log context.
func (l *Logger) Info(ctx context.Context, args ...any) {
	withContext(l.base, ctx).Info(args...)
}

// Infof writes a formatted information level message carrying the effective log context.
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	withContext(l.base, ctx).Infof(format, args...)
}

// InfoKV writes a message and key-value pairs at the information level.
func (l *Logger) InfoKV(ctx context.Context, message string, kvs ...any) {
	l.base.Infow(message, mergedPairs(ctx, kvs)...)
}

// Warn writes a warning level message carrying the effective log context.
func (l *Logger) Warn(ctx context.Context, args ...any) {
	withContext(l.base, ctx).Warn(args...)
}

// Warnf writes a formatted warning level message carrying the effective log context.
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	withContext(l.base, ctx).Warnf(format, args...)
}

// WarnKV writes a message and key-value pairs at the warning level.
func (l *Logger) WarnKV(ctx context.Context, message string, kvs ...any) {
	l.base.Warnw(message, mergedPairs(ctx, kvs)...)
}

// Error writes an error level message carrying the effective log context.
func (l *Logger) Error(ctx context.Context, args ...any) {
	withContext(l.base, ctx).Error(args...)
}

// Errorf writes a formatted error level message carrying the effective log context.
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	withContext(l.base, ctx).Errorf(format, args...)
}

// ErrorKV writes a message and key-value pairs at the error level.
func (l *Logger) ErrorKV(ctx context.Context, message string, kvs ...any) {
	l.base.Errorw(message, mergedPairs(ctx, kvs)...)
}

// Fatal writes a fatal error level message and then calls os.Exit(1).
func (l *Logger) Fatal(ctx context.Context, args ...any) {
	withContext(l.base, ctx).Fatal(args...)
}

// Fatalf writes a formatted fatal error level message and then calls os.Exit(1).
func (l *Logger) Fatalf(ctx context.Context, format string, args ...any) {
	withContext(l.base, ctx).Fatalf(format, args...)
}

// FatalKV writes a message and key-value pairs at the fatal error level and
// then calls os.Exit(1).
func (l *Logger) FatalKV(ctx context.Context, message string, kvs ...any) {
	l.base.Fatalw(message, mergedPairs(ctx, kvs)...)
}

// Panic writes a panic level message and then calls panic().
func (l *Logger) Panic(ctx context.Context, args ...any) {
	withContext(l.base, ctx).Panic(args...)
}

// Panicf writes a formatted panic level message and then calls panic().
func (l *Logger) Panicf(ctx context.Context, format string, args ...any) {
	withContext(l.base, ctx).Panicf(format, args...)
}

// PanicKV writes a message and key-value pairs at the panic level and then
// calls panic().
func (l *Logger) PanicKV(ctx context.Context, message string, kvs ...any) {
	l.base.Panicw(message, mergedPairs(ctx, kvs)...)
}

// Log writes a message at an arbitrary level carrying the effective log context.
func (l *Logger) Log(ctx context.Context, level zapcore.Level, args ...any) {
	withContext(l.base, ctx).Log(level, args...)
}

// Logf writes a formatted message at an arbitrary level.
func (l *Logger) Logf(ctx context.Context, level zapcore.Level, format string, args ...any) {
	withContext(l.base, ctx).Logf(level, format, args...)
}

// LogKV writes a message and key-value pairs at an arbitrary level.
func (l *Logger) LogKV(ctx context.Context, level zapcore.Level, message string, kvs ...any) {
	l.base.Logw(level, message, mergedPairs(ctx, kvs)...)
}

// Exception writes an error level message with the error attached under the
// "error" key and a stack trace of the call site.
func (l *Logger) Exception(ctx context.Context, err error, message string, kvs ...any) {
	pairs := make([]any, 0, len(kvs)+2)
	pairs = append(pairs, "error", err)
	pairs = append(pairs, kvs...)

	l.base.
		WithOptions(zap.AddStacktrace(zapcore.ErrorLevel)).
		Errorw(message, mergedPairs(ctx, pairs)...)
}
