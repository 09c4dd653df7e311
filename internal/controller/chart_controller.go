package controller

import (
	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChartController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
}

type chartController struct {
	chartService service.IChartService
}

func NewChartController(chartService service.IChartService) IChartController {
	return &chartController{
		chartService: chartService,
	}
}

func (c *chartController) RegisterRoutes(r fiber.Router) {
	r.Post("/birth-chart/:userId", c.Generate)
	r.Get("/birth-chart/:userId", c.Get)
}

func (c *chartController) Generate(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	chart, err := c.chartService.Generate(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.BirthChartEnvelope{BirthChart: chart})
}

func (c *chartController) Get(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	chart, err := c.chartService.GetByUserId(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.BirthChartEnvelope{BirthChart: chart})
}
