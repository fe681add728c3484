package logs

// Span identifies one unit of work, usually one program run.
type Span string

type spanKey struct{}

var SpanKey spanKey
