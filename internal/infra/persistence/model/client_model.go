package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table. The phone number is the natural
// key; counters accumulate across sync runs.
type ClientModel struct {
	Phone             string    `gorm:"type:varchar(20);primary_key"`
	UnitID            uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstOrderAt      time.Time `gorm:"not null"`
	FirstOrderCity    string    `gorm:"type:varchar(100)"`
	FirstOrderChannel int       `gorm:"not null"`
	LastOrderAt       time.Time `gorm:"not null;index"`
	LastOrderCity     string    `gorm:"type:varchar(100)"`
	OrderCount        int       `gorm:"not null"`
	OrderSum          float64   `gorm:"type:numeric(14,2);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
