package cafe

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Order is what a tab ordered. It never changes once placed; serving and
// preparing are tracked separately by InProgressOrder.
type Order struct {
	Tab    Tab     `json:"tab"`
	Foods  []Food  `json:"foods"`
	Drinks []Drink `json:"drinks"`
}

// IsEmpty reports whether the order has neither foods nor drinks.
func (o Order) IsEmpty() bool {
	return len(o.Foods) == 0 && len(o.Drinks) == 0
}

// Equal compares two orders field by field, keeping item order significant.
func (o Order) Equal(other Order) bool {
	return o.Tab == other.Tab &&
		equalSeq(o.Foods, other.Foods) &&
		equalSeq(o.Drinks, other.Drinks)
}

// Payment is the amount due for an order.
type Payment struct {
	Tab    Tab             `json:"tab"`
	Amount decimal.Decimal `json:"amount"`
}

// NewPayment sums the prices of every drink and food of the order.
func NewPayment(order Order) Payment {
	amount := totalPrice(order.Drinks).Add(totalPrice(order.Foods))
	return Payment{Tab: order.Tab, Amount: amount}
}

// Equal compares two payments, amounts by numeric value.
func (p Payment) Equal(other Payment) bool {
	return p.Tab == other.Tab && p.Amount.Equal(other.Amount)
}

// InProgressOrder tracks what has been served and prepared for a placed order.
//
// Every served or prepared item is drawn from PlacedOrder, counting duplicates:
// an order with two identical drinks can have at most two of them served.
type InProgressOrder struct {
	PlacedOrder   Order   `json:"placed_order"`
	ServedDrinks  []Drink `json:"served_drinks"`
	ServedFoods   []Food  `json:"served_foods"`
	PreparedFoods []Food  `json:"prepared_foods"`
}

// NewInProgressOrder starts tracking an order with nothing served or prepared.
func NewInProgressOrder(order Order) InProgressOrder {
	return InProgressOrder{PlacedOrder: order}
}

// OwesDrink reports whether the drink was ordered and not all of its copies are served yet.
func (p InProgressOrder) OwesDrink(drink Drink) bool {
	return countOf(p.PlacedOrder.Drinks, drink) > countOf(p.ServedDrinks, drink)
}

// CanPrepare reports whether the food was ordered and not all of its copies are prepared yet.
func (p InProgressOrder) CanPrepare(food Food) bool {
	return countOf(p.PlacedOrder.Foods, food) > countOf(p.PreparedFoods, food)
}

// HasOrdered reports whether the food is part of the order at all.
func (p InProgressOrder) HasOrdered(food Food) bool {
	return countOf(p.PlacedOrder.Foods, food) > 0
}

// AwaitsServing reports whether a prepared copy of the food is still waiting to be served.
func (p InProgressOrder) AwaitsServing(food Food) bool {
	return countOf(p.PreparedFoods, food) > countOf(p.ServedFoods, food)
}

// IsServed reports whether every ordered drink and food has been served.
func (p InProgressOrder) IsServed() bool {
	return sameItems(p.ServedDrinks, p.PlacedOrder.Drinks) &&
		sameItems(p.ServedFoods, p.PlacedOrder.Foods)
}

// WithServedDrink returns a copy with the drink appended to ServedDrinks.
func (p InProgressOrder) WithServedDrink(drink Drink) InProgressOrder {
	p.ServedDrinks = append(slices.Clone(p.ServedDrinks), drink)
	return p
}

// WithPreparedFood returns a copy with the food appended to PreparedFoods.
func (p InProgressOrder) WithPreparedFood(food Food) InProgressOrder {
	p.PreparedFoods = append(slices.Clone(p.PreparedFoods), food)
	return p
}

// WithServedFood returns a copy with the food appended to ServedFoods.
func (p InProgressOrder) WithServedFood(food Food) InProgressOrder {
	p.ServedFoods = append(slices.Clone(p.ServedFoods), food)
	return p
}

// Equal compares two progress records, keeping item order significant.
func (p InProgressOrder) Equal(other InProgressOrder) bool {
	return p.PlacedOrder.Equal(other.PlacedOrder) &&
		equalSeq(p.ServedDrinks, other.ServedDrinks) &&
		equalSeq(p.ServedFoods, other.ServedFoods) &&
		equalSeq(p.PreparedFoods, other.PreparedFoods)
}
