package wrapper

import (
	"context"
	"time"

	"github.com/TechArp/CafeApp/cqrs/command"
)

type TimeoutCommandWrapper[I command.Input, R command.Result] struct {
	timeout time.Duration
	next    command.Command[I, R]
}

// NewTimeoutCommandWrapper bounds every execution by timeout. A zero timeout disables the bound.
func NewTimeoutCommandWrapper[I command.Input, R command.Result](timeout time.Duration) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &TimeoutCommandWrapper[I, R]{timeout: timeout, next: next}
	}
}

func (cmd *TimeoutCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	if cmd.timeout <= 0 {
		return cmd.next.Execute(ctx, input)
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.timeout)
	defer cancel()

	return cmd.next.Execute(ctx, input)
}
