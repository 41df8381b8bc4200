package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Debug writes a debug level message carrying the effective log context.
func Debug(ctx context.Context, args ...any) {
	withContext(FromContext(ctx), ctx).Debug(args...)
}

// Debugf writes a formatted debug level message carrying the effective log context.
func Debugf(ctx context.Context, format string, args ...any) {
	withContext(FromContext(ctx), ctx).Debugf(format, args...)
}

// DebugKV writes a message and key-value pairs at the debug level.
// Explicit pairs win over stacked context on key collision.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Debugw(message, mergedPairs(ctx, kvs)...)
}

// Info writes an information level message carrying the effective log context.
func Info(ctx context.Context, args ...any) {
	withContext(FromContext(ctx), ctx).Info(args...)
}

// Infof writes a formatted information level message carrying the effective log context.
func Infof(ctx context.Context, format string, args ...any) {
	withContext(FromContext(ctx), ctx).Infof(format, args...)
}

// InfoKV writes a message and key-value pairs at the information level.
// Explicit pairs win over stacked context on key collision.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Infow(message, mergedPairs(ctx, kvs)...)
}

// Warn writes a warning level message carrying the effective log context.
func Warn(ctx context.Context, args ...any) {
	withContext(FromContext(ctx), ctx).Warn(args...)
}

// Warnf writes a formatted warning level message carrying the effective log context.
func Warnf(ctx context.Context, format string, args ...any) {
	withContext(FromContext(ctx), ctx).Warnf(format, args...)
}

// WarnKV writes a message and key-value pairs at the warning level.
// Explicit pairs win over stacked context on key collision.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Warnw(message, mergedPairs(ctx, kvs)...)
}

// Error writes an error level message carrying the effective log context.
func Error(ctx context.Context, args ...any) {
	withContext(FromContext(ctx), ctx).Error(args...)
}

// Errorf writes a formatted error level message carrying the effective log context.
func Errorf(ctx context.Context, format string, args ...any) {
	withContext(FromContext(ctx), ctx).Errorf(format, args...)
}

// ErrorKV writes a message and key-value pairs at the error level.
// Explicit pairs win over stacked context on key collision.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Errorw(message, mergedPairs(ctx, kvs)...)
}

// Fatal writes a fatal error level message carrying the effective log
// context and then calls os.Exit(1).
func Fatal(ctx context.Context, args ...any) {
	withContext(FromContext(ctx), ctx).Fatal(args...)
}

// Fatalf writes a formatted fatal error level message carrying the effective
// log context and then calls os.Exit(1).
func Fatalf(ctx context.Context, format string, args ...any) {
	withContext(FromContext(ctx), ctx).Fatalf(format, args...)
}

// FatalKV writes a message and key-value pairs at the fatal error level and
// then calls os.Exit(1).
func FatalKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Fatalw(message, mergedPairs(ctx, kvs)...)
}

// Panic writes a panic level message carrying the effective log context and
// then calls panic().
func Panic(ctx context.Context, args ...any) {
	withContext(FromContext(ctx), ctx).Panic(args...)
}

// Panicf writes a formatted panic level message carrying the effective log
// context and then calls panic().
func Panicf(ctx context.Context, format string, args ...any) {
	withContext(FromContext(ctx), ctx).Panicf(format, args...)
}

// PanicKV writes a message and key-value pairs at the panic level and then
// calls panic().
func PanicKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Panicw(message, mergedPairs(ctx, kvs)...)
}

// Log writes a message at an arbitrary level carrying the effective log context.
func Log(ctx context.Context, level zapcore.Level, args ...any) {
	withContext(FromContext(ctx), ctx).Log(level, args...)
}

// Logf writes a formatted message at an arbitrary level carrying the
// effective log context.
func Logf(ctx context.Context, level zapcore.Level, format string, args ...any) {
	withContext(FromContext(ctx), ctx).Logf(level, format, args...)
}

// LogKV writes a message and key-value pairs at an arbitrary level.
// Explicit pairs win over stacked context on key collision.
func LogKV(ctx context.Context, level zapcore.Level, message string, kvs ...any) {
	FromContext(ctx).Logw(level, message, mergedPairs(ctx, kvs)...)
}

// Exception writes an error level message with the error attached under the
// "error" key and a stack trace of the call site. An explicit "error" pair in
// kvs overrides the attached error.
func Exception(ctx context.Context, err error, message string, kvs ...any) {
	pairs := make([]any, 0, len(kvs)+2)
	pairs = append(pairs, "error", err)
	pairs = append(pairs, kvs...)

	FromContext(ctx).
		WithOptions(zap.AddStacktrace(zapcore.ErrorLevel)).
		Errorw(message, mergedPairs(ctx, pairs)...)
}
