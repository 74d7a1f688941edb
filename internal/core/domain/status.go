package domain

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusFailed     OrderStatus = "FAILED"
)

// statusTransitions is the closed transition table for order statuses.
// Statuses with no entry are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled, OrderStatusFailed},
	OrderStatusProcessing: {OrderStatusConfirmed, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are allowed from the status.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}
