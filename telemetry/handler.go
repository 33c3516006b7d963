package telemetry

import (
	"context"
	"log/slog"
)

// UseHandler swaps the process-wide Logger's backend for h, the way a
// caller would wire in zap via go.uber.org/zap/exp/zapslog:
//
//	zapLogger, _ := zap.NewProduction()
//	telemetry.UseHandler(zapslog.NewHandler(zapLogger.Core(), nil))
func UseHandler(h slog.Handler) {
	SetDefault(&Logger{slog: slog.New(h), level: &slog.LevelVar{}})
}

// ContextHandler wraps an slog.Handler, pulling extra attributes out of the
// record's context (a request ID, a trace ID, ...) before delegating.
type ContextHandler struct {
	handler   slog.Handler
	extractor func(context.Context) []slog.Attr
}

// NewContextHandler builds a ContextHandler around h, using extractor to
// pull attributes from each record's context.
func NewContextHandler(h slog.Handler, extractor func(context.Context) []slog.Attr) *ContextHandler {
	return &ContextHandler{handler: h, extractor: extractor}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.extractor != nil {
		for _, attr := range h.extractor(ctx) {
			r.AddAttrs(attr)
		}
	}
	return h.handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs), extractor: h.extractor}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name), extractor: h.extractor}
}

type contextKey struct{}

// ContextWithLogger stores l in ctx.
func ContextWithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext retrieves the Logger stored in ctx, or Default() if none.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return l
	}
	return Default()
}
