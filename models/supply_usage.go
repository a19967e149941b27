package models

import "time"

type SupplyUsage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SupplyID     uint      `gorm:"not null" json:"supply_id"`
	Supply       Supply    `gorm:"foreignKey:SupplyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"supply,omitempty"`
	ObjectiveID  uint      `gorm:"not null" json:"objective_id"`
	Objective    Objective `gorm:"foreignKey:ObjectiveID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"objective,omitempty"`
	OperatorID   uint      `gorm:"not null" json:"operator_id"`
	Operator     User      `gorm:"foreignKey:OperatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"operator,omitempty"`
	QuantityUsed float64   `gorm:"not null" json:"quantity_used"`
	UsedAt       time.Time `gorm:"not null" json:"used_at"`
}
