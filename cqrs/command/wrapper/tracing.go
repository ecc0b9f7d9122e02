package wrapper

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/TechArp/CafeApp/cqrs/command"
)

const tracerName = "cqrs/command"

type TracingCommandWrapper[I command.Input, R command.Result] struct {
	tracer     trace.Tracer
	spanName   string
	attributes func(I) []attribute.KeyValue
	next       command.Command[I, R]
}

// NewTracingCommandWrapper starts a span named spanName around every execution.
// attributes, when not nil, adds input specific attributes to the span.
func NewTracingCommandWrapper[I command.Input, R command.Result](
	spanName string,
	attributes func(I) []attribute.KeyValue,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &TracingCommandWrapper[I, R]{
			tracer:     otel.Tracer(tracerName),
			spanName:   spanName,
			attributes: attributes,
			next:       next,
		}
	}
}

func (t *TracingCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	ctx, span := t.tracer.Start(ctx, t.spanName)
	defer span.End()

	if t.attributes != nil {
		span.SetAttributes(t.attributes(input)...)
	}

	result, err := t.next.Execute(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}
