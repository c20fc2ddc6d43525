package schema

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracedValidator wraps a Validator so that every top-level Validate call
// records an OpenTelemetry span carrying the schema kind and the verdict.
// Evaluation itself is unchanged: the span is purely observational, like the
// diagnostics log.
type TracedValidator struct {
	validator Validator
	tracer    oteltrace.Tracer
}

// Traced wraps the validator with the given tracer. A nil tracer yields a
// wrapper that validates without creating spans, so callers can pass through
// an optional tracer unconditionally.
func (v Validator) Traced(tracer oteltrace.Tracer) TracedValidator {
	return TracedValidator{validator: v, tracer: tracer}
}

// Validate evaluates the wrapped validator under a span. The context is used
// only for span parentage; evaluation is synchronous and does not observe
// cancellation.
func (tv TracedValidator) Validate(ctx context.Context, value any, opts ...Option) bool {
	if tv.tracer == nil {
		return tv.validator.Validate(value, opts...)
	}

	_, span := tv.tracer.Start(ctx, "schema.Validate",
		oteltrace.WithAttributes(attribute.String("schema.kind", string(tv.validator.Kind()))))
	defer span.End()

	accepted := tv.validator.Validate(value, opts...)

	span.SetAttributes(attribute.Bool("schema.accepted", accepted))

	return accepted
}
