package models

import "time"

type Service struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"not null" json:"name"`
	CategoryID      uint    `gorm:"index;not null" json:"category_id"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	Description     string  `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
