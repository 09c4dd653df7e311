package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserActivity struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    int64     `gorm:"not null;index"`
	Action    string    `gorm:"type:varchar(64);not null"`
	Details   datatypes.JSON
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}
