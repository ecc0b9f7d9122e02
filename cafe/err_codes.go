package cafe

// Error codes of domain rejections.
const (
	CodeTabAlreadyOpened               = "TAB_ALREADY_OPENED"
	CodeCanNotOrderWithClosedTab       = "CAN_NOT_ORDER_WITH_CLOSED_TAB"
	CodeCanNotPlaceEmptyOrder          = "CAN_NOT_PLACE_EMPTY_ORDER"
	CodeOrderAlreadyPlaced             = "ORDER_ALREADY_PLACED"
	CodeCanNotServeNonOrderedDrink     = "CAN_NOT_SERVE_NON_ORDERED_DRINK"
	CodeOrderAlreadyServed             = "ORDER_ALREADY_SERVED"
	CodeCanNotServeForNonPlacedOrder   = "CAN_NOT_SERVE_FOR_NON_PLACED_ORDER"
	CodeCanNotServeWithClosedTab       = "CAN_NOT_SERVE_WITH_CLOSED_TAB"
	CodeCanNotPrepareNonOrderedFood    = "CAN_NOT_PREPARE_NON_ORDERED_FOOD"
	CodeCanNotPrepareForNonPlacedOrder = "CAN_NOT_PREPARE_FOR_NON_PLACED_ORDER"
	CodeCanNotPrepareWithClosedTab     = "CAN_NOT_PREPARE_WITH_CLOSED_TAB"
	CodeCanNotServeNonOrderedFood      = "CAN_NOT_SERVE_NON_ORDERED_FOOD"
	CodeCanNotServeNonPreparedFood     = "CAN_NOT_SERVE_NON_PREPARED_FOOD"

	// CodeUnsupportedTransition is returned for a state and input pair the
	// aggregate does not know how to handle.
	CodeUnsupportedTransition = "UNSUPPORTED_TRANSITION"
)

// CodeInvalidMenuItem is returned by NewMenuItem for an empty name or a negative price.
const CodeInvalidMenuItem = "INVALID_MENU_ITEM"
