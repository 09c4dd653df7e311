package model

import (
	"time"
)

type ChatSession struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    int64     `gorm:"not null;index"`
	BotType   string    `gorm:"type:varchar(64);not null;index"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
