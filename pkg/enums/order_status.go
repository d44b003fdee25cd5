package enums

// OrderStatus tracks an order through the kitchen-to-doorstep lifecycle.
type OrderStatus string

const (
	// OrderStatusReceived is the initial state of every accepted order.
	OrderStatusReceived OrderStatus = "received"
	// OrderStatusPreparing means the kitchen picked the order up.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusOutForDelivery means a rider has the order.
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	// OrderStatusDelivered is terminal.
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether the value is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusPreparing, OrderStatusOutForDelivery, OrderStatusDelivered:
		return true
	}
	return false
}
