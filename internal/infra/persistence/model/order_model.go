package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. The (unit, date, number) key makes
// re-inserted window edges collapse instead of duplicating.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UnitID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_orders_unit_date_number,priority:1"`
	HeadUnit   string    `gorm:"type:varchar(100)"`
	Department string    `gorm:"type:varchar(255);not null"`
	Date       time.Time `gorm:"not null;uniqueIndex:idx_orders_unit_date_number,priority:2"`
	Number     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_orders_unit_date_number,priority:3"`
	Type       int       `gorm:"not null"`
	Status     int       `gorm:"not null"`
	Phone      string    `gorm:"type:varchar(20);index"`
	Amount     float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
