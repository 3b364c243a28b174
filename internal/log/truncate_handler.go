package log

import (
	"context"
	"io"
	"log/slog"
)

// DefaultMaxValueLen is the default length bound for logged attribute values.
// Long enough to keep a full recipe title or a short column list intact,
// short enough that a pathological filter expression cannot flood a log line.
const DefaultMaxValueLen = 256

// Ellipsis marks a truncated attribute value.
const Ellipsis = "..."

// TruncateHandler wraps an slog.Handler to bound attribute value length.
// It intercepts log records and shortens oversized string values before
// passing them to the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
type TruncateHandler struct {
	// handler is the underlying slog handler that receives bounded records.
	handler slog.Handler

	// maxLen is the maximum rendered length of a string attribute value.
	maxLen int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given handler.
// String attribute values longer than maxLen are cut and suffixed with an
// ellipsis before being passed on. If handler is nil, the returned
// TruncateHandler uses slog.Default().Handler(). A non-positive maxLen
// falls back to DefaultMaxValueLen.
func NewTruncateHandler(handler slog.Handler, maxLen int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &TruncateHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle bounds the record's attribute values and passes it on.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	bounded := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		bounded.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, bounded)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are bounded before being added.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	boundedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		boundedAttrs[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(boundedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr bounds a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		boundedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			boundedAttrs[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(boundedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		value := a.Value.String()
		if len(value) > h.maxLen {
			return slog.String(a.Key, value[:h.maxLen]+Ellipsis)
		}
	}

	return a
}

// NewLogger creates a new slog.Logger with bounded attribute values.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault().
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewTruncateHandler(textHandler, DefaultMaxValueLen))
}
