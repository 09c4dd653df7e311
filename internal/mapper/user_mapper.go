package mapper

import (
	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:               u.Id,
		Phone:            u.Phone,
		Email:            u.Email,
		Name:             u.Name,
		DateOfBirth:      u.DateOfBirth,
		BirthTime:        u.BirthTime,
		BirthLocation:    u.BirthLocation,
		UnknownBirthTime: u.UnknownBirthTime,
		CreatedAt:        u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:               u.Id,
		Phone:            u.Phone,
		Email:            u.Email,
		Name:             u.Name,
		DateOfBirth:      u.DateOfBirth,
		BirthTime:        u.BirthTime,
		BirthLocation:    u.BirthLocation,
		UnknownBirthTime: u.UnknownBirthTime,
		CreatedAt:        u.CreatedAt,
	}
}
