package cafe

import (
	"fmt"

	"github.com/TechArp/CafeApp/outcome"
)

// State names.
const (
	StateClosedTab       = "closed_tab"
	StateOpenedTab       = "opened_tab"
	StatePlacedOrder     = "placed_order"
	StateOrderInProgress = "order_in_progress"
	StateServedOrder     = "served_order"
)

// State is the lifecycle state of a tab. The set of implementations is closed to this package.
type State interface {
	// Name returns the state name.
	Name() string
	// Equal compares two states by value.
	Equal(other State) bool

	isState()
}

type (
	// ClosedTab is the initial state. LastPayment is nil until a tab was paid.
	ClosedTab struct {
		LastPayment *Payment
	}

	// OpenedTab is a tab without an order.
	OpenedTab struct {
		Tab Tab
	}

	// PlacedOrder is a tab whose order has nothing served or prepared yet.
	PlacedOrder struct {
		Order Order
	}

	// OrderInProgress is a tab whose order is partially served or prepared.
	OrderInProgress struct {
		Progress InProgressOrder
	}

	// ServedOrder is a tab whose order has been completely served.
	ServedOrder struct {
		Order Order
	}
)

// InitialState is the state every tab starts from, and the seed of Replay.
func InitialState() State {
	return ClosedTab{}
}

func (ClosedTab) Name() string       { return StateClosedTab }
func (OpenedTab) Name() string       { return StateOpenedTab }
func (PlacedOrder) Name() string     { return StatePlacedOrder }
func (OrderInProgress) Name() string { return StateOrderInProgress }
func (ServedOrder) Name() string     { return StateServedOrder }

func (s ClosedTab) Equal(other State) bool {
	o, ok := other.(ClosedTab)
	if !ok {
		return false
	}
	if s.LastPayment == nil || o.LastPayment == nil {
		return s.LastPayment == nil && o.LastPayment == nil
	}
	return s.LastPayment.Equal(*o.LastPayment)
}

func (s OpenedTab) Equal(other State) bool {
	o, ok := other.(OpenedTab)
	return ok && o.Tab == s.Tab
}

func (s PlacedOrder) Equal(other State) bool {
	o, ok := other.(PlacedOrder)
	return ok && o.Order.Equal(s.Order)
}

func (s OrderInProgress) Equal(other State) bool {
	o, ok := other.(OrderInProgress)
	return ok && o.Progress.Equal(s.Progress)
}

func (s ServedOrder) Equal(other State) bool {
	o, ok := other.(ServedOrder)
	return ok && o.Order.Equal(s.Order)
}

func (ClosedTab) isState()       {}
func (OpenedTab) isState()       {}
func (PlacedOrder) isState()     {}
func (OrderInProgress) isState() {}
func (ServedOrder) isState()     {}

// Step folds one event into a state.
//
//	ClosedTab                      + TabOpened     -> OpenedTab
//	OpenedTab                      + OrderPlaced   -> PlacedOrder
//	PlacedOrder | OrderInProgress  + DrinkServed   -> OrderInProgress, drink appended to ServedDrinks
//	PlacedOrder | OrderInProgress  + FoodPrepared  -> OrderInProgress, food appended to PreparedFoods
//	PlacedOrder | OrderInProgress  + FoodServed    -> OrderInProgress, food appended to ServedFoods
//	PlacedOrder | OrderInProgress  + OrderServed   -> ServedOrder
//
// Any other pair fails with UnsupportedTransition.
func Step(state State, event Event) outcome.Outcome[State, Error] {
	switch s := state.(type) {
	case ClosedTab:
		if e, ok := event.(TabOpened); ok {
			return moveTo(OpenedTab{Tab: e.Tab})
		}
	case OpenedTab:
		if e, ok := event.(OrderPlaced); ok {
			return moveTo(PlacedOrder{Order: e.Order})
		}
	case PlacedOrder:
		if next, ok := progress(NewInProgressOrder(s.Order), event); ok {
			return moveTo(next)
		}
	case OrderInProgress:
		if next, ok := progress(s.Progress, event); ok {
			return moveTo(next)
		}
	case ServedOrder:
		// terminal
	}

	return outcome.Fail[State, Error](unsupported(state, event))
}

func progress(p InProgressOrder, event Event) (State, bool) {
	switch e := event.(type) {
	case DrinkServed:
		return OrderInProgress{Progress: p.WithServedDrink(e.Drink)}, true
	case FoodPrepared:
		return OrderInProgress{Progress: p.WithPreparedFood(e.Food)}, true
	case FoodServed:
		return OrderInProgress{Progress: p.WithServedFood(e.Food)}, true
	case OrderServed:
		return ServedOrder{Order: e.Order}, true
	}
	return nil, false
}

func moveTo(next State) outcome.Outcome[State, Error] {
	return outcome.Pure[State, Error](next)
}

// Apply folds an event produced by Execute for the same state.
// Such pairs are always supported; any other pair panics.
// Events from an untrusted stream go through Step instead.
func Apply(state State, event Event) State {
	next, ok := Step(state, event).Value()
	if !ok {
		panic(fmt.Sprintf("cafe: %v", unsupported(state, event)))
	}
	return next
}

// Fold applies events in order starting from state, stopping at the first
// unsupported transition.
func Fold(state State, events []Event) outcome.Outcome[State, Error] {
	folded := outcome.Pure[State, Error](state)
	for _, event := range events {
		folded = outcome.Bind(folded, func(s State) outcome.Outcome[State, Error] {
			return Step(s, event)
		})
	}
	return folded
}

// Replay rebuilds the state of a tab from its recorded events.
func Replay(events []Event) outcome.Outcome[State, Error] {
	return Fold(InitialState(), events)
}

type named interface {
	Name() string
}

func nameOf(v named) string {
	if v == nil {
		return "<nil>"
	}
	return v.Name()
}

func unsupported(state State, input named) UnsupportedTransition {
	return UnsupportedTransition{State: nameOf(state), Input: nameOf(input)}
}
