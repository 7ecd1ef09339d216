package logs

import (
	"context"
	"log/slog"
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span := SpanOf(ctx); span != "" {
		record.Add("logs.span", span)
	}
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}

type attrsKeyType struct{}

var attrsKey attrsKeyType

// With returns a context whose log records carry args, in addition to the
// ones of ctx.
func With(ctx context.Context, args ...any) context.Context {
	parent, _ := ctx.Value(attrsKey).([]slog.Attr)
	record := slog.Record{}
	record.Add(args...)
	attrs := make([]slog.Attr, 0, len(parent)+record.NumAttrs())
	attrs = append(attrs, parent...)
	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})
	return context.WithValue(ctx, attrsKey, attrs)
}
