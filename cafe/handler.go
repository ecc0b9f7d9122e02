package cafe

import "github.com/TechArp/CafeApp/outcome"

// Decision is the result of Execute: the events to record, or why the command was rejected.
type Decision = outcome.Outcome[[]Event, Error]

// Evolution is a decided command folded into the state: the next state and
// the events that produced it, in the order they must be recorded.
type Evolution struct {
	State  State
	Events []Event
}

// Execute decides whether cmd is legal in state and which events it produces.
// Every state and command pair is answered either with events or with an Error;
// values the aggregate does not know fail with UnsupportedTransition.
func Execute(state State, cmd Command) Decision {
	switch c := cmd.(type) {
	case OpenTab:
		return openTab(state, c)
	case PlaceOrder:
		return placeOrder(state, c)
	case ServeDrink:
		return serveDrink(state, c)
	case PrepareFood:
		return prepareFood(state, c)
	case ServeFood:
		return serveFood(state, c)
	}
	return reject(unsupported(state, cmd))
}

// Evolve executes cmd and folds the resulting events into state.
// A rejection is returned untouched and nothing is applied.
func Evolve(state State, cmd Command) outcome.Outcome[Evolution, Error] {
	return outcome.Bind(Execute(state, cmd), func(events []Event) outcome.Outcome[Evolution, Error] {
		return outcome.Map(Fold(state, events), func(next State) Evolution {
			return Evolution{State: next, Events: events}
		})
	})
}

func openTab(state State, cmd OpenTab) Decision {
	switch state.(type) {
	case ClosedTab:
		return accept(TabOpened{Tab: cmd.Tab})
	case OpenedTab, PlacedOrder, OrderInProgress, ServedOrder:
		return reject(TabAlreadyOpened{})
	}
	return reject(unsupported(state, cmd))
}

func placeOrder(state State, cmd PlaceOrder) Decision {
	switch state.(type) {
	case OpenedTab:
		if cmd.Order.IsEmpty() {
			return reject(CanNotPlaceEmptyOrder{})
		}
		return accept(OrderPlaced{Order: cmd.Order})
	case PlacedOrder:
		return reject(OrderAlreadyPlaced{})
	case ClosedTab, OrderInProgress, ServedOrder:
		return reject(CanNotOrderWithClosedTab{})
	}
	return reject(unsupported(state, cmd))
}

func serveDrink(state State, cmd ServeDrink) Decision {
	switch s := state.(type) {
	case PlacedOrder:
		return serveDrinkOf(NewInProgressOrder(s.Order), cmd)
	case OrderInProgress:
		return serveDrinkOf(s.Progress, cmd)
	case ServedOrder:
		return reject(OrderAlreadyServed{})
	case ClosedTab:
		return reject(CanNotServeWithClosedTab{})
	case OpenedTab:
		return reject(CanNotServeForNonPlacedOrder{})
	}
	return reject(unsupported(state, cmd))
}

func serveDrinkOf(p InProgressOrder, cmd ServeDrink) Decision {
	if !p.OwesDrink(cmd.Drink) {
		return reject(CanNotServeNonOrderedDrink{Drink: cmd.Drink})
	}
	return accept(completing(p.WithServedDrink(cmd.Drink), DrinkServed(cmd))...)
}

func prepareFood(state State, cmd PrepareFood) Decision {
	switch s := state.(type) {
	case PlacedOrder:
		return prepareFoodOf(NewInProgressOrder(s.Order), cmd)
	case OrderInProgress:
		return prepareFoodOf(s.Progress, cmd)
	case ServedOrder:
		return reject(OrderAlreadyServed{})
	case ClosedTab:
		return reject(CanNotPrepareWithClosedTab{})
	case OpenedTab:
		return reject(CanNotPrepareForNonPlacedOrder{})
	}
	return reject(unsupported(state, cmd))
}

// prepareFoodOf never completes the order: only serving does.
func prepareFoodOf(p InProgressOrder, cmd PrepareFood) Decision {
	if !p.CanPrepare(cmd.Food) {
		return reject(CanNotPrepareNonOrderedFood{Food: cmd.Food})
	}
	return accept(FoodPrepared(cmd))
}

func serveFood(state State, cmd ServeFood) Decision {
	switch s := state.(type) {
	case PlacedOrder:
		return serveFoodOf(NewInProgressOrder(s.Order), cmd)
	case OrderInProgress:
		return serveFoodOf(s.Progress, cmd)
	case ServedOrder:
		return reject(OrderAlreadyServed{})
	case ClosedTab:
		return reject(CanNotServeWithClosedTab{})
	case OpenedTab:
		return reject(CanNotServeForNonPlacedOrder{})
	}
	return reject(unsupported(state, cmd))
}

func serveFoodOf(p InProgressOrder, cmd ServeFood) Decision {
	if !p.HasOrdered(cmd.Food) {
		return reject(CanNotServeNonOrderedFood{Food: cmd.Food})
	}
	if !p.AwaitsServing(cmd.Food) {
		return reject(CanNotServeNonPreparedFood{Food: cmd.Food})
	}
	return accept(completing(p.WithServedFood(cmd.Food), FoodServed(cmd))...)
}

// completing appends OrderServed after the serving event when next has
// everything served.
func completing(next InProgressOrder, served Event) []Event {
	if !next.IsServed() {
		return []Event{served}
	}
	order := next.PlacedOrder
	return []Event{served, OrderServed{Order: order, Payment: NewPayment(order)}}
}

func accept(events ...Event) Decision {
	return outcome.Pure[[]Event, Error](events)
}

func reject(err Error) Decision {
	return outcome.Fail[[]Event, Error](err)
}
