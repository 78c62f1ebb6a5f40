package model

import "time"

// SettingModel mirrors the 'settings' table, a key-value store for sync state
// that belongs to no single unit.
type SettingModel struct {
	Key       string `gorm:"type:varchar(100);primary_key"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
