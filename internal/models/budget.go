package models

// Budget represents a monthly spending limit for a category.
type Budget struct {
	Base
	UserID   string  `gorm:"type:uuid;index;not null" json:"user_id"`
	Category string  `gorm:"not null" json:"category"`
	Amount   float64 `gorm:"not null" json:"amount"`
}
