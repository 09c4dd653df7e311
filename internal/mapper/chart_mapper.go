package mapper

import (
	"encoding/json"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/model"

	"gorm.io/datatypes"
)

type ChartMapper struct{}

func NewChartMapper() *ChartMapper {
	return &ChartMapper{}
}

func (m *ChartMapper) ToEntity(c *model.BirthChart) *entity.BirthChart {
	if c == nil {
		return nil
	}

	return &entity.BirthChart{
		Id:        c.Id,
		UserId:    c.UserId,
		ChartData: json.RawMessage(c.ChartData),
		Houses:    json.RawMessage(c.Houses),
		Planets:   json.RawMessage(c.Planets),
		Aspects:   json.RawMessage(c.Aspects),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChartMapper) ToModel(c *entity.BirthChart) *model.BirthChart {
	if c == nil {
		return nil
	}

	return &model.BirthChart{
		Id:        c.Id,
		UserId:    c.UserId,
		ChartData: datatypes.JSON(c.ChartData),
		Houses:    datatypes.JSON(c.Houses),
		Planets:   datatypes.JSON(c.Planets),
		Aspects:   datatypes.JSON(c.Aspects),
		CreatedAt: c.CreatedAt,
	}
}
