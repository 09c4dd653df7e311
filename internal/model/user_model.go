package model

import (
	"time"
)

type User struct {
	Id               int64   `gorm:"primaryKey;autoIncrement"`
	Phone            string  `gorm:"type:varchar(32);uniqueIndex;not null"`
	Email            *string `gorm:"type:varchar(255)"`
	Name             string  `gorm:"type:varchar(255);not null"`
	DateOfBirth      string  `gorm:"type:varchar(32);not null"`
	BirthTime        *string `gorm:"type:varchar(16)"`
	BirthLocation    string  `gorm:"type:text;not null"`
	UnknownBirthTime bool    `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
