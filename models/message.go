package models

import "time"

type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromUserID uint      `gorm:"not null" json:"from_user_id"`
	FromUser   User      `gorm:"foreignKey:FromUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"from_user,omitempty"`
	ToUserID   uint      `gorm:"not null" json:"to_user_id"`
	ToUser     User      `gorm:"foreignKey:ToUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"to_user,omitempty"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	Read       bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
