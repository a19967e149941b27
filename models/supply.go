package models

import "time"

type Supply struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Unit            string    `gorm:"type:varchar(50)" json:"unit"`
	QuantityInStock float64   `gorm:"not null;default:0" json:"quantity_in_stock"`
	MinStockLevel   float64   `gorm:"not null;default:0" json:"min_stock_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsLowStock reports whether the supply is at or below its minimum level.
func (s *Supply) IsLowStock() bool {
	return s.QuantityInStock <= s.MinStockLevel
}
