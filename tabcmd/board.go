package tabcmd

import (
	"context"
	"sync"

	"github.com/code19m/errx"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/ucdef"
)

const (
	BoardOperationID = "track_tab_events"

	CodeMissingEvent = "MISSING_TAB_EVENT"
)

var _ ucdef.EventSubscriber[cafe.Event] = (*Board)(nil)

// Board is a read model of every tab seen in the published event stream.
// It is safe for concurrent use.
type Board struct {
	mu   sync.RWMutex
	tabs map[cafe.TabID]cafe.State
}

// NewBoard creates an empty Board.
func NewBoard() *Board {
	return &Board{tabs: make(map[cafe.TabID]cafe.State)}
}

func (b *Board) OperationID() string {
	return BoardOperationID
}

// Handle applies e to the state of its tab. An event that does not fit the
// tab's state is rejected and the state is kept.
func (b *Board) Handle(_ context.Context, e cafe.Event) error {
	if e == nil {
		return errx.New("tab event is required",
			errx.WithCode(CodeMissingEvent),
			errx.WithType(errx.T_Validation),
		)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id := e.AggregateID()
	current, ok := b.tabs[id]
	if !ok {
		current = cafe.InitialState()
	}

	result := cafe.Step(current, e)
	next, ok := result.Value()
	if !ok {
		return cafe.ToErrorX(result.Errors())
	}

	b.tabs[id] = next
	return nil
}

// State returns the tracked state of tab id.
func (b *Board) State(id cafe.TabID) (cafe.State, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s, ok := b.tabs[id]
	return s, ok
}

// Len returns the number of tracked tabs.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.tabs)
}
