package models

import "time"

type Sector struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ObjectiveID uint      `gorm:"not null" json:"objective_id"`
	Objective   Objective `gorm:"foreignKey:ObjectiveID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"objective,omitempty"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
