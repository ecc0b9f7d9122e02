package cafe

// Event names, also used as type discriminators when events are encoded.
const (
	EventTabOpened    = "tab.opened"
	EventOrderPlaced  = "order.placed"
	EventDrinkServed  = "drink.served"
	EventFoodPrepared = "food.prepared"
	EventFoodServed   = "food.served"
	EventOrderServed  = "order.served"
)

// Event is a fact recorded on a tab. The set of implementations is closed to this package.
type Event interface {
	// Name returns the event name.
	Name() string
	// AggregateID returns the identifier of the tab the event belongs to.
	AggregateID() TabID
	// Equal compares two events by value.
	Equal(other Event) bool

	isEvent()
}

type (
	// TabOpened records that a tab was opened.
	TabOpened struct {
		Tab Tab `json:"tab"`
	}

	// OrderPlaced records the order of a tab.
	OrderPlaced struct {
		Order Order `json:"order"`
	}

	// DrinkServed records that one drink of the order was served.
	DrinkServed struct {
		Drink Drink `json:"drink"`
		TabID TabID `json:"tab_id"`
	}

	// FoodPrepared records that one food of the order was prepared in the kitchen.
	FoodPrepared struct {
		Food  Food  `json:"food"`
		TabID TabID `json:"tab_id"`
	}

	// FoodServed records that one prepared food was served.
	FoodServed struct {
		Food  Food  `json:"food"`
		TabID TabID `json:"tab_id"`
	}

	// OrderServed records that everything ordered has been served, and what is due.
	OrderServed struct {
		Order   Order   `json:"order"`
		Payment Payment `json:"payment"`
	}
)

func (TabOpened) Name() string    { return EventTabOpened }
func (OrderPlaced) Name() string  { return EventOrderPlaced }
func (DrinkServed) Name() string  { return EventDrinkServed }
func (FoodPrepared) Name() string { return EventFoodPrepared }
func (FoodServed) Name() string   { return EventFoodServed }
func (OrderServed) Name() string  { return EventOrderServed }

func (e TabOpened) AggregateID() TabID    { return e.Tab.ID }
func (e OrderPlaced) AggregateID() TabID  { return e.Order.Tab.ID }
func (e DrinkServed) AggregateID() TabID  { return e.TabID }
func (e FoodPrepared) AggregateID() TabID { return e.TabID }
func (e FoodServed) AggregateID() TabID   { return e.TabID }
func (e OrderServed) AggregateID() TabID  { return e.Order.Tab.ID }

func (e TabOpened) Equal(other Event) bool {
	o, ok := other.(TabOpened)
	return ok && o.Tab == e.Tab
}

func (e OrderPlaced) Equal(other Event) bool {
	o, ok := other.(OrderPlaced)
	return ok && o.Order.Equal(e.Order)
}

func (e DrinkServed) Equal(other Event) bool {
	o, ok := other.(DrinkServed)
	return ok && o.TabID == e.TabID && o.Drink.Equal(e.Drink)
}

func (e FoodPrepared) Equal(other Event) bool {
	o, ok := other.(FoodPrepared)
	return ok && o.TabID == e.TabID && o.Food.Equal(e.Food)
}

func (e FoodServed) Equal(other Event) bool {
	o, ok := other.(FoodServed)
	return ok && o.TabID == e.TabID && o.Food.Equal(e.Food)
}

func (e OrderServed) Equal(other Event) bool {
	o, ok := other.(OrderServed)
	return ok && o.Order.Equal(e.Order) && o.Payment.Equal(e.Payment)
}

func (TabOpened) isEvent()    {}
func (OrderPlaced) isEvent()  {}
func (DrinkServed) isEvent()  {}
func (FoodPrepared) isEvent() {}
func (FoodServed) isEvent()   {}
func (OrderServed) isEvent()  {}

// EventsEqual compares two event lists element by element.
func EventsEqual(a, b []Event) bool {
	return equalSeq(a, b)
}
