package models

import "time"

type CleaningRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SectorID   uint      `gorm:"not null" json:"sector_id"`
	Sector     Sector    `gorm:"foreignKey:SectorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"sector,omitempty"`
	OperatorID uint      `gorm:"not null" json:"operator_id"`
	Operator   User      `gorm:"foreignKey:OperatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"operator,omitempty"`
	CleanedAt  time.Time `gorm:"not null" json:"cleaned_at"`
	Status     string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
}
