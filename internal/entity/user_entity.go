package entity

import (
	"time"
)

type User struct {
	Id               int64
	Phone            string
	Email            *string
	Name             string
	DateOfBirth      string
	BirthTime        *string
	BirthLocation    string
	UnknownBirthTime bool
	CreatedAt        time.Time
}
