package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logctx "github.com/neocrym/log-with-context"
)

// newObservedContext returns a context carrying an observed logger and a
// fresh field stack, plus the recorded log sink.
func newObservedContext(t *testing.T) (context.Context, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())

	return logctx.NewContext(ctx), logs
}

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"dpanic": zapcore.DPanicLevel,
		"panic":  zapcore.PanicLevel,
		"fatal":  zapcore.FatalLevel,
		" INFO ": zapcore.InfoLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestNestedScopeScenario walks the two-level scenario: fields accumulate
// while scopes are entered and disappear as they unwind.
func TestNestedScopeScenario(t *testing.T) {
	t.Parallel()

	ctx, logs := newObservedContext(t)

	ctx, outer := logctx.Enter(ctx, "current_request", "hi")

	Info(ctx, "Level 1")
	require.Equal(t,
		map[string]any{"current_request": "hi"},
		logs.All()[0].ContextMap())

	_, inner := logctx.Enter(ctx, "more_info", "this")

	Info(ctx, "Level 2")
	require.Equal(t,
		map[string]any{"current_request": "hi", "more_info": "this"},
		logs.All()[1].ContextMap())

	inner.Exit()

	Info(ctx, "Back to level 1")
	require.Equal(t,
		map[string]any{"current_request": "hi"},
		logs.All()[2].ContextMap())

	outer.Exit()

	Info(ctx, "No context at all")
	require.Empty(t, logs.All()[3].ContextMap())

	// Every call produced exactly one record.
	require.Len(t, logs.All(), 4)
}

// TestInnerFrameOverridesOuter checks collision resolution between frames.
func TestInnerFrameOverridesOuter(t *testing.T) {
	t.Parallel()

	ctx, logs := newObservedContext(t)

	ctx, outer := logctx.Enter(ctx, "a", 1, "b", 2)
	defer outer.Exit()

	_, inner := logctx.Enter(ctx, "a", 4, "c", 3)
	defer inner.Exit()

	InfoKV(ctx, "merged")
	require.Equal(t,
		map[string]any{"a": int64(4), "b": int64(2), "c": int64(3)},
		logs.All()[0].ContextMap())
}

// TestExplicitPairsWin ensures per-call pairs override stacked frames.
func TestExplicitPairsWin(t *testing.T) {
	t.Parallel()

	ctx, logs := newObservedContext(t)

	ctx, scope := logctx.Enter(ctx, "a", 1, "b", 2)
	defer scope.Exit()

	InfoKV(ctx, "call", "a", 10, "d", 4)

	entry := logs.All()[0]
	require.Equal(t,
		map[string]any{"a": int64(10), "b": int64(2), "d": int64(4)},
		entry.ContextMap())
}

// TestNoContext checks that logging without any scope emits only explicit
// pairs and never fails.
func TestNoContext(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())

	InfoKV(ctx, "bare", "hello", "world")
	Info(ctx, "no fields")

	require.Equal(t, map[string]any{"hello": "world"}, logs.All()[0].ContextMap())
	require.Empty(t, logs.All()[1].ContextMap())
}

// TestLeveledCalls maps every façade entry point to its zap level.
func TestLeveledCalls(t *testing.T) {
	t.Parallel()

	ctx, logs := newObservedContext(t)

	Debug(ctx, "d")
	Debugf(ctx, "%s", "df")
	DebugKV(ctx, "dkv")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e")
	Log(ctx, zapcore.WarnLevel, "generic")
	Logf(ctx, zapcore.InfoLevel, "%s", "genericf")
	LogKV(ctx, zapcore.ErrorLevel, "generickv", "k", "v")

	expected := []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.DebugLevel,
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
		zapcore.WarnLevel,
		zapcore.InfoLevel,
		zapcore.ErrorLevel,
	}

	entries := logs.All()
	require.Len(t, entries, len(expected))

	for i, lvl := range expected {
		require.Equal(t, lvl, entries[i].Level, "call %d", i)
	}
}

// TestException checks the error field and the attached stack trace.
func TestException(t *testing.T) {
	t.Parallel()

	ctx, logs := newObservedContext(t)

	ctx, scope := logctx.Enter(ctx, "request_id", "r-1")
	defer scope.Exit()

	errBoom := errors.New("boom")
	Exception(ctx, errBoom, "it failed", "step", "final")

	entry := logs.All()[0]
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	require.Equal(t, "it failed", entry.Message)
	require.NotEmpty(t, entry.Stack)
	require.Equal(t,
		map[string]any{"error": "boom", "request_id": "r-1", "step": "final"},
		entry.ContextMap())
}

// TestNamedLogger ensures names land on emitted entries and that named
// loggers still observe the shared stack.
func TestNamedLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core).Sugar()

	ctx := logctx.NewContext(context.Background())

	ctx, scope := logctx.Enter(ctx, "a", 1)
	defer scope.Exit()

	first := Wrap(base).Named("first")
	second := Wrap(base).Named("second")

	first.Info(ctx, "one")
	second.InfoKV(ctx, "two")

	entries := logs.All()
	require.Equal(t, "first", entries[0].LoggerName)
	require.Equal(t, "second", entries[1].LoggerName)
	require.Equal(t, map[string]any{"a": int64(1)}, entries[0].ContextMap())
	require.Equal(t, map[string]any{"a": int64(1)}, entries[1].ContextMap())
}

// TestWithName verifies the context-carried logger name helper.
func TestWithName(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "component")

	Info(ctx, "named")
	require.Equal(t, "component", logs.All()[0].LoggerName)
}

// TestWithLevelOption checks that a pinned-level core filters records below
// its level.
func TestWithLevelOption(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	pinned := zap.New(core, WithLevel(zapcore.ErrorLevel)).Sugar()
	ctx := ToContext(context.Background(), pinned)

	Info(ctx, "filtered")
	Error(ctx, "kept")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "kept", entries[0].Message)
}

// TestNew covers constructor defaults.
func TestNew(t *testing.T) {
	t.Parallel()

	require.NotNil(t, New(nil))
	require.NotNil(t, New(zapcore.WarnLevel))
}
