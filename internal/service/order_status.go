package service

import "github.com/uniquemj/ecommerce-api/internal/constants"

// sellerTransitions is the fulfillment chain a seller may walk, one step
// at a time.
var sellerTransitions = map[string]map[string]bool{
	constants.OrderItemStatusPending: {
		constants.OrderItemStatusToPack: true,
	},
	constants.OrderItemStatusToPack: {
		constants.OrderItemStatusToArrangeShipment: true,
	},
	constants.OrderItemStatusToArrangeShipment: {
		constants.OrderItemStatusToHandover: true,
	},
	constants.OrderItemStatusToHandover: {
		constants.OrderItemStatusShipping: true,
	},
	constants.OrderItemStatusShipping: {
		constants.OrderItemStatusDelivered: true,
	},
}

// returnResolutions are the two ways a seller may settle an initialized
// return.
var returnResolutions = map[string]bool{
	constants.OrderItemStatusReturnAccepted: true,
	constants.OrderItemStatusReturnRejected: true,
}

var validStatuses = map[string]bool{
	constants.OrderItemStatusPending:           true,
	constants.OrderItemStatusToPack:            true,
	constants.OrderItemStatusToArrangeShipment: true,
	constants.OrderItemStatusToHandover:        true,
	constants.OrderItemStatusShipping:          true,
	constants.OrderItemStatusDelivered:         true,
	constants.OrderItemStatusCanceled:          true,
	constants.OrderItemStatusFailDelivery:      true,
	constants.OrderItemStatusReturnInitialized: true,
	constants.OrderItemStatusReturnAccepted:    true,
	constants.OrderItemStatusReturnRejected:    true,
}

// IsValidOrderItemStatus reports whether s is a known status.
func IsValidOrderItemStatus(s string) bool {
	return validStatuses[s]
}

// CanSellerTransition reports whether a seller may move an item from one
// status to the next.
func CanSellerTransition(from, to string) bool {
	next, ok := sellerTransitions[from]
	return ok && next[to]
}

// CanInitReturn reports whether a customer may open a return from the
// current status.
func CanInitReturn(from string) bool {
	return from == constants.OrderItemStatusDelivered
}

// CanResolveReturn reports whether a seller may settle an initialized
// return with the given status.
func CanResolveReturn(from, to string) bool {
	return from == constants.OrderItemStatusReturnInitialized && returnResolutions[to]
}
