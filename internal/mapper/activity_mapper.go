package mapper

import (
	"encoding/json"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.UserActivity) *entity.UserActivity {
	if a == nil {
		return nil
	}

	return &entity.UserActivity{
		Id:        a.Id,
		UserId:    a.UserId,
		Action:    a.Action,
		Details:   json.RawMessage(a.Details),
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.UserActivity) *model.UserActivity {
	if a == nil {
		return nil
	}

	return &model.UserActivity{
		Id:        a.Id,
		UserId:    a.UserId,
		Action:    a.Action,
		Details:   datatypes.JSON(a.Details),
		CreatedAt: a.CreatedAt,
	}
}
