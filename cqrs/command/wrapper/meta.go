package wrapper

import (
	"context"

	"github.com/TechArp/CafeApp/cqrs/command"
	"github.com/TechArp/CafeApp/meta"
	"github.com/TechArp/CafeApp/observability/tracing"
)

type MetaInjectCommandWrapper[I command.Input, R command.Result] struct {
	serviceName    string
	serviceVersion string
	extract        func(I) map[meta.ContextKey]string
	next           command.Command[I, R]
}

// NewMetaInjectCommandWrapper puts the trace id, service info and whatever extract
// returns for the input into the context of the wrapped chain.
// A trace id already present in the context is kept.
func NewMetaInjectCommandWrapper[I command.Input, R command.Result](
	serviceName, serviceVersion string,
	extract func(I) map[meta.ContextKey]string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &MetaInjectCommandWrapper[I, R]{
			serviceName:    serviceName,
			serviceVersion: serviceVersion,
			extract:        extract,
			next:           next,
		}
	}
}

func (cmd *MetaInjectCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	metadata := map[meta.ContextKey]string{}
	if cmd.extract != nil {
		for k, v := range cmd.extract(input) {
			metadata[k] = v
		}
	}

	metadata[meta.ServiceName] = cmd.serviceName
	metadata[meta.ServiceVersion] = cmd.serviceVersion
	if meta.Find(ctx, meta.TraceID) == "" {
		metadata[meta.TraceID] = tracing.GetStartingTraceID(ctx)
	}

	ctx = meta.InjectMetaToContext(ctx, metadata)

	return cmd.next.Execute(ctx, input)
}
