package dto

import "time"

type RegisterRequest struct {
	Phone            string `json:"phone" validate:"required,min=5,max=32"`
	Name             string `json:"name" validate:"required,min=1"`
	DateOfBirth      string `json:"dateOfBirth" validate:"required"`
	BirthTime        string `json:"birthTime" validate:"omitempty"`
	BirthLocation    string `json:"birthLocation" validate:"required"`
	UnknownBirthTime bool   `json:"unknownBirthTime"`
}

type UpdateContactRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserResponse struct {
	Id               int64     `json:"id"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email,omitempty"`
	Name             string    `json:"name"`
	DateOfBirth      string    `json:"dateOfBirth"`
	BirthTime        *string   `json:"birthTime"`
	BirthLocation    string    `json:"birthLocation"`
	UnknownBirthTime bool      `json:"unknownBirthTime"`
	CreatedAt        time.Time `json:"createdAt"`
}

type UserEnvelope struct {
	User *UserResponse `json:"user"`
}
