package models

import "time"

type Observation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SectorID   uint      `gorm:"not null" json:"sector_id"`
	Sector     Sector    `gorm:"foreignKey:SectorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"sector,omitempty"`
	OperatorID uint      `gorm:"not null" json:"operator_id"`
	Operator   User      `gorm:"foreignKey:OperatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"operator,omitempty"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
