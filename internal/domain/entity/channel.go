package entity

// OrderChannel is the fixed ordinal encoding of the portal's order-direction
// categories. The ordinals are part of the persisted contract and must never
// be reordered.
type OrderChannel int

const (
	// ChannelDelivery is a courier-delivered order.
	ChannelDelivery OrderChannel = 0
	// ChannelPickup is an order collected by the client.
	ChannelPickup OrderChannel = 1
	// ChannelRestaurant is an order placed and consumed on site.
	ChannelRestaurant OrderChannel = 2
)

// IsValid checks if the OrderChannel is a valid value.
func (c OrderChannel) IsValid() bool {
	switch c {
	case ChannelDelivery, ChannelPickup, ChannelRestaurant:
		return true
	default:
		return false
	}
}

// String returns the canonical name of the channel.
func (c OrderChannel) String() string {
	switch c {
	case ChannelDelivery:
		return "delivery"
	case ChannelPickup:
		return "pickup"
	case ChannelRestaurant:
		return "restaurant"
	default:
		return "unknown"
	}
}
