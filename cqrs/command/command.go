// Package command defines the generic command handler and its middleware type.
package command

import "context"

// EmptyResult is a placeholder type for commands that do not return a result.
type (
	EmptyResult = struct{}
)

type (
	// Input represents the input type for a command.
	Input any

	// Result represents the result type for a command.
	Result any
)

// Command defines a handler for a CQRS command.
type Command[I Input, R Result] interface {
	// Execute processes the command input and returns a result or error.
	Execute(ctx context.Context, input I) (R, error)
}

// WrapFunc defines a middleware function for wrapping command handlers.
type WrapFunc[I Input, R Result] func(Command[I, R]) Command[I, R]

// Func adapts a plain function to Command.
type Func[I Input, R Result] func(ctx context.Context, input I) (R, error)

// Execute calls f.
func (f Func[I, R]) Execute(ctx context.Context, input I) (R, error) {
	return f(ctx, input)
}

// Chain wraps cmd so that the first wrapper is the outermost one:
// Chain(cmd, a, b) executes a, then b, then cmd.
func Chain[I Input, R Result](cmd Command[I, R], wrappers ...WrapFunc[I, R]) Command[I, R] {
	for i := len(wrappers) - 1; i >= 0; i-- {
		cmd = wrappers[i](cmd)
	}
	return cmd
}
