package logger

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// TraceContextHandler stamps records with the ids of the active span so
// access logs can be joined with traces.
type TraceContextHandler struct {
	slog.Handler
}

func NewTraceContextHandler(next slog.Handler) *TraceContextHandler {
	return &TraceContextHandler{Handler: next}
}

func (h *TraceContextHandler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanContextFromContext(ctx)
	if span.IsValid() {
		record.AddAttrs(
			slog.String("trace_id", span.TraceID().String()),
			slog.String("span_id", span.SpanID().String()),
			slog.Bool("trace_sampled", span.IsSampled()),
		)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *TraceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewTraceContextHandler(h.Handler.WithAttrs(attrs))
}

func (h *TraceContextHandler) WithGroup(name string) slog.Handler {
	return NewTraceContextHandler(h.Handler.WithGroup(name))
}
