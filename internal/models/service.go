package models

import (
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
)

// Service is one pest-control job performed (or to be performed) for a
// client. ClientID is checked by the application; there is no foreign key.
type Service struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"size:36;index;not null" json:"client_id"`

	Date        calendar.Date `gorm:"column:service_date;type:varchar(10);index;not null" json:"date"`
	ServiceType string        `gorm:"size:160;not null" json:"service_type"`
	Value       float64       `gorm:"not null;default:0" json:"value"`
	Status      string        `gorm:"size:20;index;not null;default:'PENDING'" json:"status"`
	Notes       *string       `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
