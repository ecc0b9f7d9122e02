// Package wrapper provides middleware wrappers for query handlers.
package wrapper

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/TechArp/CafeApp/cqrs/query"
)

// TracingQueryWrapper starts a span around every query execution and records its error.
type TracingQueryWrapper[I query.Input, R query.Result] struct {
	tracer   trace.Tracer
	spanName string
	next     query.Query[I, R]
}

// NewTracingQueryWrapper returns a query.WrapFunc that traces executions under spanName.
//
//	handler := wrapper.NewTracingQueryWrapper[[]cafe.Event, cafe.State]("tab.replay")(replay)
func NewTracingQueryWrapper[I query.Input, R query.Result](spanName string) query.WrapFunc[I, R] {
	return func(next query.Query[I, R]) query.Query[I, R] {
		return &TracingQueryWrapper[I, R]{
			tracer:   otel.Tracer("cqrs/query"),
			spanName: spanName,
			next:     next,
		}
	}
}

func (t *TracingQueryWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	ctx, span := t.tracer.Start(ctx, t.spanName)
	defer span.End()

	result, err := t.next.Execute(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}
