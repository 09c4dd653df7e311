package controller

import (
	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBotController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type botController struct {
	botService service.IBotService
}

func NewBotController(botService service.IBotService) IBotController {
	return &botController{
		botService: botService,
	}
}

func (c *botController) RegisterRoutes(r fiber.Router) {
	r.Get("/bots", c.GetAll)
}

func (c *botController) GetAll(ctx *fiber.Ctx) error {
	bots, err := c.botService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(dto.BotsEnvelope{Bots: bots})
}
