package slogctx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	logctx "github.com/neocrym/log-with-context"
)

// newJSONLogger returns a logger writing JSON lines through the decorator
// and the buffer collecting them.
func newJSONLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(NewHandler(handler)), &buf
}

// decodeLines parses each emitted JSON record.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	decoder := json.NewDecoder(buf)
	for decoder.More() {
		var record map[string]any
		require.NoError(t, decoder.Decode(&record))

		records = append(records, record)
	}

	return records
}

// TestHandlerInjectsStack checks that records carry the live stack and stop
// carrying it after unwind.
func TestHandlerInjectsStack(t *testing.T) {
	t.Parallel()

	log, buf := newJSONLogger()
	ctx := logctx.NewContext(context.Background())

	ctx, scope := logctx.Enter(ctx, "current_request", "hi")

	log.InfoContext(ctx, "Level 1")

	scope.Exit()

	log.InfoContext(ctx, "No context at all")

	records := decodeLines(t, buf)
	require.Len(t, records, 2)
	require.Equal(t, "hi", records[0]["current_request"])
	require.NotContains(t, records[1], "current_request")
}

// TestHandlerExplicitAttrWins ensures a per-call attribute overrides the
// stacked value for the same key.
func TestHandlerExplicitAttrWins(t *testing.T) {
	t.Parallel()

	log, buf := newJSONLogger()
	ctx := logctx.NewContext(context.Background())

	ctx, scope := logctx.Enter(ctx, "a", "stacked", "b", "kept")
	defer scope.Exit()

	log.InfoContext(ctx, "call", "a", "explicit")

	records := decodeLines(t, buf)
	require.Equal(t, "explicit", records[0]["a"])
	require.Equal(t, "kept", records[0]["b"])
}

// TestHandlerWithAttrsAndGroup checks decorator delegation survives handler
// derivation.
func TestHandlerWithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	log, buf := newJSONLogger()
	log = log.With("static", true).WithGroup("req")

	ctx := logctx.NewContext(context.Background())

	ctx, scope := logctx.Enter(ctx, "a", 1)
	defer scope.Exit()

	log.InfoContext(ctx, "grouped")

	records := decodeLines(t, buf)
	require.Equal(t, true, records[0]["static"])

	group, ok := records[0]["req"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, group["a"])
}
