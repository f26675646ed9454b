package models

import "time"

// Client is a customer of the pest-control business.
type Client struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:120;not null" json:"name"`

	Phone        *string `gorm:"size:40" json:"phone"`
	Address      *string `gorm:"size:255" json:"address"`
	City         *string `gorm:"size:120" json:"city"`
	Neighborhood *string `gorm:"size:120" json:"neighborhood"`
	Email        *string `gorm:"size:160" json:"email"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
