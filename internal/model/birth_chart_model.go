package model

import (
	"time"

	"gorm.io/datatypes"
)

type BirthChart struct {
	Id        int64          `gorm:"primaryKey;autoIncrement"`
	UserId    int64          `gorm:"not null;index"`
	ChartData datatypes.JSON `gorm:"not null"`
	Houses    datatypes.JSON `gorm:"not null"`
	Planets   datatypes.JSON `gorm:"not null"`
	Aspects   datatypes.JSON
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BirthChart) TableName() string {
	return "birth_charts"
}
