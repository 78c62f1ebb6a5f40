package model

import "time"

// StopListModel mirrors the 'stop_list' table fed from the external workbook.
type StopListModel struct {
	Phone        string    `gorm:"type:varchar(20);primary_key"`
	LastCallDate time.Time `gorm:"type:date;not null"`
	DoNotCall    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StopListModel) TableName() string {
	return "stop_list"
}
