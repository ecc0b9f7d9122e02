// Package query defines the generic read only query handler and its middleware type.
package query

import "context"

type (
	// Input represents the input type for a query.
	Input any

	// Result represents the result type for a query.
	Result any
)

// Query defines a handler for a CQRS query.
type Query[I Input, R Result] interface {
	// Execute runs the query and returns its result or error.
	Execute(ctx context.Context, input I) (R, error)
}

// WrapFunc defines a middleware function for wrapping query handlers.
type WrapFunc[I Input, R Result] func(Query[I, R]) Query[I, R]

// Func adapts a plain function to Query.
type Func[I Input, R Result] func(ctx context.Context, input I) (R, error)

// Execute calls f.
func (f Func[I, R]) Execute(ctx context.Context, input I) (R, error) {
	return f(ctx, input)
}
