package logs

// Span identifies a unit of work in log records, such as one compiled source.
type Span string

type spanKey struct{}

var SpanKey spanKey
