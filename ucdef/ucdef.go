// Package ucdef defines the kinds of use cases the cafe application is built from.
package ucdef

import "context"

// Use case types.
const (
	TypeUserAction      = "user_action"
	TypeEventSubscriber = "event_subscriber"
)

// UserAction is a synchronous operation triggered by staff, such as opening
// a tab or serving a drink. The caller waits for the result.
//
// Type parameters:
//   - I: Input data type
//   - O: Output data type
//
// Characteristics:
//   - Rejections are returned to the caller as errx validation or conflict errors
//   - Internal failures are logged and alerted
type UserAction[I, O any] interface {
	// OperationID returns a unique identifier for the use case.
	OperationID() string

	// Execute executes the use case.
	Execute(ctx context.Context, in I) (O, error)
}

// EventSubscriber reacts to published tab events, for example to keep a read
// model of every open tab up to date.
//
// Characteristics:
//   - Asynchronous, the publisher does not wait for it
//   - A returned error is logged, the event is not delivered again
type EventSubscriber[E any] interface {
	// OperationID returns a unique identifier for the use case.
	OperationID() string

	// Handle handles the event.
	Handle(ctx context.Context, e E) error
}
