package wrapper

import (
	"context"
	"time"

	"github.com/code19m/errx"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/TechArp/CafeApp/cqrs/command"
)

type MetricsCommandWrapper[I command.Input, R command.Result] struct {
	registry metrics.Registry
	prefix   string
	next     command.Command[I, R]
}

// NewMetricsCommandWrapper records into registry, under "command.<cmdName>":
//
//	.duration           timer of every execution
//	.ok                 counter of successful executions
//	.error.<code>       counter of failed executions per errx code
//
// A nil registry uses metrics.DefaultRegistry.
func NewMetricsCommandWrapper[I command.Input, R command.Result](
	registry metrics.Registry,
	cmdName string,
) command.WrapFunc[I, R] {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &MetricsCommandWrapper[I, R]{
			registry: registry,
			prefix:   "command." + cmdName,
			next:     next,
		}
	}
}

func (cmd *MetricsCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	start := time.Now()

	result, err := cmd.next.Execute(ctx, input)

	metrics.GetOrRegisterTimer(cmd.prefix+".duration", cmd.registry).UpdateSince(start)

	if err != nil {
		code := errx.AsErrorX(err).Code()
		metrics.GetOrRegisterCounter(cmd.prefix+".error."+code, cmd.registry).Inc(1)
	} else {
		metrics.GetOrRegisterCounter(cmd.prefix+".ok", cmd.registry).Inc(1)
	}

	return result, err
}
