package cafe

// Command names.
const (
	CommandOpenTab     = "open_tab"
	CommandPlaceOrder  = "place_order"
	CommandServeDrink  = "serve_drink"
	CommandPrepareFood = "prepare_food"
	CommandServeFood   = "serve_food"
)

// Command is a request to change a tab. The set of implementations is closed to this package.
type Command interface {
	// Name returns the command name.
	Name() string
	// AggregateID returns the identifier of the tab the command targets.
	AggregateID() TabID

	isCommand()
}

type (
	// OpenTab opens a tab for a table.
	OpenTab struct {
		Tab Tab
	}

	// PlaceOrder places the order of an open tab.
	PlaceOrder struct {
		Order Order
	}

	// ServeDrink serves one ordered drink.
	ServeDrink struct {
		Drink Drink
		TabID TabID
	}

	// PrepareFood marks one ordered food as prepared.
	PrepareFood struct {
		Food  Food
		TabID TabID
	}

	// ServeFood serves one prepared food.
	ServeFood struct {
		Food  Food
		TabID TabID
	}
)

func (OpenTab) Name() string     { return CommandOpenTab }
func (PlaceOrder) Name() string  { return CommandPlaceOrder }
func (ServeDrink) Name() string  { return CommandServeDrink }
func (PrepareFood) Name() string { return CommandPrepareFood }
func (ServeFood) Name() string   { return CommandServeFood }

func (c OpenTab) AggregateID() TabID     { return c.Tab.ID }
func (c PlaceOrder) AggregateID() TabID  { return c.Order.Tab.ID }
func (c ServeDrink) AggregateID() TabID  { return c.TabID }
func (c PrepareFood) AggregateID() TabID { return c.TabID }
func (c ServeFood) AggregateID() TabID   { return c.TabID }

func (OpenTab) isCommand()     {}
func (PlaceOrder) isCommand()  {}
func (ServeDrink) isCommand()  {}
func (PrepareFood) isCommand() {}
func (ServeFood) isCommand()   {}
