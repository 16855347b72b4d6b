package render

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
)

// TracerName is the instrumentation name used with the global tracer provider.
const TracerName = "github.com/vango-dev/htmlnode/pkg/render"

func defaultTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// startSpan opens the span covering one render.
func (r *Renderer) startSpan(ctx context.Context, n node.Node) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "htmlnode.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("htmlnode.root", describe(n)),
			attribute.Bool("htmlnode.pretty", r.config.Pretty),
		),
	)
}

// endSpan records the render result on the span. The caller ends it.
func endSpan(span trace.Span, bytes int64, nodes int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if code := errors.CodeOf(err); code != "" {
			span.SetAttributes(attribute.String("htmlnode.error_code", code))
		}
		return
	}
	span.SetAttributes(
		attribute.Int64("htmlnode.bytes", bytes),
		attribute.Int("htmlnode.nodes", nodes),
	)
	span.SetStatus(codes.Ok, "")
}
