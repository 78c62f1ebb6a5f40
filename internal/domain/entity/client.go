package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientRow is one normalized row of the clients statistic report: the
// portal's first/last order summary for a single phone number, restricted to
// the queried window. Timestamps are UTC.
type ClientRow struct {
	Phone             string
	FirstOrderAt      time.Time
	FirstOrderCity    string
	FirstOrderChannel OrderChannel
	LastOrderAt       time.Time
	LastOrderCity     string
	OrderCount        int
	OrderSum          float64
}

// GroupKey returns the aggregation key of the row. The first-order fields are
// invariant per client across windows, so grouping by them isolates the
// per-window slices of one client.
func (r ClientRow) GroupKey() ClientGroupKey {
	return ClientGroupKey{
		Phone:             r.Phone,
		FirstOrderAt:      r.FirstOrderAt,
		FirstOrderCity:    r.FirstOrderCity,
		FirstOrderChannel: r.FirstOrderChannel,
	}
}

// ClientGroupKey identifies one client within an aggregation pass.
type ClientGroupKey struct {
	Phone             string
	FirstOrderAt      time.Time
	FirstOrderCity    string
	FirstOrderChannel OrderChannel
}

// Client is the persisted cumulative record of one phone number. Phones are
// globally unique; when a client reappears under another unit the record is
// reassigned to the unit of the newest order.
type Client struct {
	Phone             string
	UnitID            uuid.UUID // Unit that produced the newest order seen so far.
	FirstOrderAt      time.Time // Immutable once written.
	FirstOrderCity    string
	FirstOrderChannel OrderChannel
	LastOrderAt       time.Time // Monotonically replaced by newer values only.
	LastOrderCity     string
	OrderCount        int     // Cumulative, additive across syncs.
	OrderSum          float64 // Cumulative, additive across syncs.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
