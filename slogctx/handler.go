package slogctx

import (
	"context"
	"log/slog"

	logctx "github.com/neocrym/log-with-context"
)

// Handler decorates a slog.Handler and injects the effective log context into
// every record at handle time. Extraction happens per call so records always
// reflect the live stack.
type Handler struct {
	next slog.Handler
}

// NewHandler wraps the given handler.
func NewHandler(next slog.Handler) *Handler {
	return &Handler{next: next}
}

// Enabled delegates to the underlying handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle appends the effective context to the record and delegates. Keys
// already present on the record win: an explicit per-call attribute is the
// most specific intent and overrides any stacked frame.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	fields := logctx.Current(ctx)
	if len(fields) == 0 {
		return h.next.Handle(ctx, record)
	}

	explicit := make(map[string]struct{}, record.NumAttrs())

	record.Attrs(func(attr slog.Attr) bool {
		explicit[attr.Key] = struct{}{}
		return true
	})

	for _, field := range fields {
		if _, taken := explicit[field.Key]; taken {
			continue
		}

		record.AddAttrs(slog.Any(field.Key, field.Value))
	}

	return h.next.Handle(ctx, record)
}

// WithAttrs returns a decorated handler with additional static attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs)}
}

// WithGroup returns a decorated handler with attribute grouping.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name)}
}
