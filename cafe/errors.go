package cafe

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"
)

// Error is a rejection of a command by the aggregate.
// The set of implementations is closed to this package.
type Error interface {
	error
	// Code returns a stable machine readable code.
	Code() string

	isError()
}

type (
	// TabAlreadyOpened rejects OpenTab on anything but a closed tab.
	TabAlreadyOpened struct{}

	// CanNotOrderWithClosedTab rejects PlaceOrder when no tab is open for ordering.
	CanNotOrderWithClosedTab struct{}

	// CanNotPlaceEmptyOrder rejects an order without foods and drinks.
	CanNotPlaceEmptyOrder struct{}

	// OrderAlreadyPlaced rejects a second PlaceOrder.
	OrderAlreadyPlaced struct{}

	// CanNotServeNonOrderedDrink rejects serving a drink the order does not owe.
	CanNotServeNonOrderedDrink struct {
		Drink Drink
	}

	// OrderAlreadyServed rejects serving or preparing for a completed order.
	OrderAlreadyServed struct{}

	// CanNotServeForNonPlacedOrder rejects serving before an order is placed.
	CanNotServeForNonPlacedOrder struct{}

	// CanNotServeWithClosedTab rejects serving on a closed tab.
	CanNotServeWithClosedTab struct{}

	// CanNotPrepareNonOrderedFood rejects preparing a food the order does not owe.
	CanNotPrepareNonOrderedFood struct {
		Food Food
	}

	// CanNotPrepareForNonPlacedOrder rejects preparing before an order is placed.
	CanNotPrepareForNonPlacedOrder struct{}

	// CanNotPrepareWithClosedTab rejects preparing on a closed tab.
	CanNotPrepareWithClosedTab struct{}

	// CanNotServeNonOrderedFood rejects serving a food that was never ordered.
	CanNotServeNonOrderedFood struct {
		Food Food
	}

	// CanNotServeNonPreparedFood rejects serving a food with no prepared copy waiting.
	CanNotServeNonPreparedFood struct {
		Food Food
	}

	// UnsupportedTransition is returned for a state and input pair that the
	// aggregate does not handle. State and Input hold their names.
	UnsupportedTransition struct {
		State string
		Input string
	}
)

func (TabAlreadyOpened) Error() string               { return "tab already opened" }
func (CanNotOrderWithClosedTab) Error() string       { return "can not order with closed tab" }
func (CanNotPlaceEmptyOrder) Error() string          { return "can not place empty order" }
func (OrderAlreadyPlaced) Error() string             { return "order already placed" }
func (OrderAlreadyServed) Error() string             { return "order already served" }
func (CanNotServeForNonPlacedOrder) Error() string   { return "can not serve for non placed order" }
func (CanNotServeWithClosedTab) Error() string       { return "can not serve with closed tab" }
func (CanNotPrepareForNonPlacedOrder) Error() string { return "can not prepare for non placed order" }
func (CanNotPrepareWithClosedTab) Error() string     { return "can not prepare with closed tab" }

func (e CanNotServeNonOrderedDrink) Error() string {
	return fmt.Sprintf("can not serve non ordered drink %d %q", e.Drink.MenuNumber, e.Drink.Name)
}

func (e CanNotPrepareNonOrderedFood) Error() string {
	return fmt.Sprintf("can not prepare non ordered food %d %q", e.Food.MenuNumber, e.Food.Name)
}

func (e CanNotServeNonOrderedFood) Error() string {
	return fmt.Sprintf("can not serve non ordered food %d %q", e.Food.MenuNumber, e.Food.Name)
}

func (e CanNotServeNonPreparedFood) Error() string {
	return fmt.Sprintf("can not serve non prepared food %d %q", e.Food.MenuNumber, e.Food.Name)
}

func (e UnsupportedTransition) Error() string {
	return fmt.Sprintf("unsupported transition: %s in state %s", e.Input, e.State)
}

func (TabAlreadyOpened) Code() string               { return CodeTabAlreadyOpened }
func (CanNotOrderWithClosedTab) Code() string       { return CodeCanNotOrderWithClosedTab }
func (CanNotPlaceEmptyOrder) Code() string          { return CodeCanNotPlaceEmptyOrder }
func (OrderAlreadyPlaced) Code() string             { return CodeOrderAlreadyPlaced }
func (CanNotServeNonOrderedDrink) Code() string     { return CodeCanNotServeNonOrderedDrink }
func (OrderAlreadyServed) Code() string             { return CodeOrderAlreadyServed }
func (CanNotServeForNonPlacedOrder) Code() string   { return CodeCanNotServeForNonPlacedOrder }
func (CanNotServeWithClosedTab) Code() string       { return CodeCanNotServeWithClosedTab }
func (CanNotPrepareNonOrderedFood) Code() string    { return CodeCanNotPrepareNonOrderedFood }
func (CanNotPrepareForNonPlacedOrder) Code() string { return CodeCanNotPrepareForNonPlacedOrder }
func (CanNotPrepareWithClosedTab) Code() string     { return CodeCanNotPrepareWithClosedTab }
func (CanNotServeNonOrderedFood) Code() string      { return CodeCanNotServeNonOrderedFood }
func (CanNotServeNonPreparedFood) Code() string     { return CodeCanNotServeNonPreparedFood }
func (UnsupportedTransition) Code() string          { return CodeUnsupportedTransition }

func (TabAlreadyOpened) isError()               {}
func (CanNotOrderWithClosedTab) isError()       {}
func (CanNotPlaceEmptyOrder) isError()          {}
func (OrderAlreadyPlaced) isError()             {}
func (CanNotServeNonOrderedDrink) isError()     {}
func (OrderAlreadyServed) isError()             {}
func (CanNotServeForNonPlacedOrder) isError()   {}
func (CanNotServeWithClosedTab) isError()       {}
func (CanNotPrepareNonOrderedFood) isError()    {}
func (CanNotPrepareForNonPlacedOrder) isError() {}
func (CanNotPrepareWithClosedTab) isError()     {}
func (CanNotServeNonOrderedFood) isError()      {}
func (CanNotServeNonPreparedFood) isError()     {}
func (UnsupportedTransition) isError()          {}

// Is matches errors.Is targets of the same kind carrying an equal drink.
func (e CanNotServeNonOrderedDrink) Is(target error) bool {
	t, ok := target.(CanNotServeNonOrderedDrink)
	return ok && t.Drink.Equal(e.Drink)
}

// Is matches errors.Is targets of the same kind carrying an equal food.
func (e CanNotPrepareNonOrderedFood) Is(target error) bool {
	t, ok := target.(CanNotPrepareNonOrderedFood)
	return ok && t.Food.Equal(e.Food)
}

// Is matches errors.Is targets of the same kind carrying an equal food.
func (e CanNotServeNonOrderedFood) Is(target error) bool {
	t, ok := target.(CanNotServeNonOrderedFood)
	return ok && t.Food.Equal(e.Food)
}

// Is matches errors.Is targets of the same kind carrying an equal food.
func (e CanNotServeNonPreparedFood) Is(target error) bool {
	t, ok := target.(CanNotServeNonPreparedFood)
	return ok && t.Food.Equal(e.Food)
}

// ToErrorX folds a list of rejections into a single errx error.
// The code and message come from the first rejection; every code is listed in the details.
// Returns nil for an empty list.
func ToErrorX(errs []Error) error {
	if len(errs) == 0 {
		return nil
	}

	first := errs[0]
	codes := lo.Map(errs, func(e Error, _ int) string { return e.Code() })
	messages := lo.Map(errs, func(e Error, _ int) string { return e.Error() })

	return errx.New(first.Error(),
		errx.WithCode(first.Code()),
		errx.WithType(errorType(first)),
		errx.WithDetails(errx.D{
			"codes":    strings.Join(codes, ","),
			"messages": strings.Join(messages, "; "),
		}),
	)
}

func errorType(err Error) errx.Type {
	switch err.(type) {
	case CanNotPlaceEmptyOrder,
		CanNotServeNonOrderedDrink,
		CanNotPrepareNonOrderedFood,
		CanNotServeNonOrderedFood,
		CanNotServeNonPreparedFood:
		return errx.T_Validation
	case UnsupportedTransition:
		return errx.T_Internal
	default:
		return errx.T_Conflict
	}
}
