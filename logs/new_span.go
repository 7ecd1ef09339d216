package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span of ctx when parent is
// empty. args become attributes of every record logged with the returned
// context.
type NewSpan func(ctx context.Context, parent Span, args ...any) (context.Context, Span)

// SpanOf returns the span of ctx, or an empty one.
func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, args ...any) (context.Context, Span) {
		creator := SpanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		if len(args) > 0 {
			ctx = With(ctx, args...)
		}

		var attrs []any
		if creator != "" && creator != parent {
			attrs = append(attrs, "creator", creator)
		}
		if parent != "" {
			attrs = append(attrs, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", attrs...)

		return ctx, span
	}
}
