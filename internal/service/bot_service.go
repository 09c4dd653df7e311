package service

import (
	"context"

	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/repository/memory"
)

type IBotService interface {
	GetAll(ctx context.Context) ([]*dto.AstrologyBotResponse, error)
}

type botService struct {
	catalog *memory.BotCatalog
}

func NewBotService(catalog *memory.BotCatalog) IBotService {
	return &botService{catalog: catalog}
}

func (s *botService) GetAll(ctx context.Context) ([]*dto.AstrologyBotResponse, error) {
	bots := s.catalog.All()
	out := make([]*dto.AstrologyBotResponse, len(bots))
	for i, bot := range bots {
		out[i] = toBotResponse(bot)
	}
	return out, nil
}

func toBotResponse(bot *entity.AstrologyBot) *dto.AstrologyBotResponse {
	return &dto.AstrologyBotResponse{
		Id:             bot.Id,
		Name:           bot.Name,
		Description:    bot.Description,
		Specialization: bot.Specialization,
		Icon:           bot.Icon,
		Color:          bot.Color,
		Rating:         bot.Rating,
		SystemPrompt:   bot.SystemPrompt,
	}
}
