package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitModel mirrors the 'units' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UnitModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CountryCode     string     `gorm:"type:varchar(2);not null;uniqueIndex:idx_units_country_external,priority:1"`
	ExternalID      int        `gorm:"not null;uniqueIndex:idx_units_country_external,priority:2"`
	CatalogUUID     string     `gorm:"type:varchar(32)"`
	Name            string     `gorm:"type:varchar(255);not null"`
	TZShift         int        `gorm:"not null"`
	Login           string     `gorm:"type:varchar(255)"`
	Password        string     `gorm:"type:varchar(255)"`
	IsActive        bool       `gorm:"not null;default:false"`
	FirstActiveDate time.Time  `gorm:"type:date"`
	SyncedThrough   *time.Time `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}
