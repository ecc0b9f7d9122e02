package tabcmd

import (
	"context"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/cqrs/query"
	querywrapper "github.com/TechArp/CafeApp/cqrs/query/wrapper"
)

// Replay rebuilds the state of a tab from its recorded events.
type Replay = query.Query[[]cafe.Event, cafe.State]

// NewReplay returns a traced Replay query. An event that does not fit the
// state it is applied to fails with the UNSUPPORTED_TRANSITION code.
func NewReplay() Replay {
	return querywrapper.NewTracingQueryWrapper[[]cafe.Event, cafe.State]("tab.replay")(
		query.Func[[]cafe.Event, cafe.State](replay),
	)
}

func replay(_ context.Context, events []cafe.Event) (cafe.State, error) {
	result := cafe.Replay(events)
	state, ok := result.Value()
	if !ok {
		return nil, cafe.ToErrorX(result.Errors())
	}
	return state, nil
}
