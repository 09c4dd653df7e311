package model

import (
	"time"
)

type ChatMessage struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	SessionId int64     `gorm:"not null;index"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
