package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("draftday/internal/interfaces/httpapi")

// startSpan opens handler-level child spans. Routes the otelhttp middleware
// filters out (healthz) carry no parent and get no span here either, and
// plumbing helpers below the handler prefix stay off the trace.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !strings.HasPrefix(name, "httpapi.Handler.") {
		return ctx, parent
	}
	return apiTracer.Start(ctx, name)
}
