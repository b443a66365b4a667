package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the formkit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("formkit")

// StartConditionSpan starts a span for one visibility evaluation.
//
// Uses the global OTel tracer provider. Configure the provider before
// calling:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func StartConditionSpan(ctx context.Context, elementID, expression string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "formkit.condition.run",
		trace.WithAttributes(
			attribute.String("element.id", elementID),
			attribute.String("condition.expression", expression),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
