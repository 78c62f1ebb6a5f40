package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderRow is one normalized row of the orders report. The timestamp is UTC.
type OrderRow struct {
	HeadUnit   string // The organizational unit the department belongs to.
	Department string // The department (pizzeria) name as printed on the report.
	Date       time.Time
	Number     string // The portal's order number, unique per unit and day.
	Type       OrderChannel
	Status     OrderStatus
	Phone      string
	Amount     float64
}

// Order is the persisted, append-only order record. Uniqueness is
// (unit, date, number); re-fetched duplicates are discarded on insert.
type Order struct {
	ID         uuid.UUID
	UnitID     uuid.UUID
	HeadUnit   string
	Department string
	Date       time.Time
	Number     string
	Type       OrderChannel
	Status     OrderStatus
	Phone      string
	Amount     float64
	CreatedAt  time.Time
}
