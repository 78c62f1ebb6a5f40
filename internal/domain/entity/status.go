package entity

// OrderStatus is the fixed ordinal encoding of the portal's order states.
// Like OrderChannel, the ordinals are persisted and must stay stable.
type OrderStatus int

const (
	// StatusDelivery means the order was handed to a courier and delivered.
	StatusDelivery OrderStatus = 0
	// StatusRefused means the client refused the order.
	StatusRefused OrderStatus = 1
	// StatusOverdue means the order missed its promised time.
	StatusOverdue OrderStatus = 2
	// StatusPacked means the order was packed but not yet dispatched.
	StatusPacked OrderStatus = 3
	// StatusInProgress means the order is being prepared.
	StatusInProgress OrderStatus = 4
	// StatusAccepted means the order was accepted but not started.
	StatusAccepted OrderStatus = 5
	// StatusCompleted means a non-delivery order was fulfilled.
	StatusCompleted OrderStatus = 6
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	return s >= StatusDelivery && s <= StatusCompleted
}

// String returns the canonical name of the status.
func (s OrderStatus) String() string {
	switch s {
	case StatusDelivery:
		return "delivery"
	case StatusRefused:
		return "refused"
	case StatusOverdue:
		return "overdue"
	case StatusPacked:
		return "packed"
	case StatusInProgress:
		return "in_progress"
	case StatusAccepted:
		return "accepted"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
