package controller

import (
	"strconv"

	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/pkg/serverutils"
	"astro-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	GetByPhone(ctx *fiber.Ctx) error
	UpdateContact(ctx *fiber.Ctx) error
	GetActivity(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Post("/register", c.Register)
	r.Get("/user/:phone", c.GetByPhone)
	r.Patch("/user/:userId/contact", c.UpdateContact)
	r.Get("/user/:userId/activity", c.GetActivity)
}

func (c *userController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Registration failed")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	user, err := c.userService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.UserEnvelope{User: user})
}

func (c *userController) GetByPhone(ctx *fiber.Ctx) error {
	user, err := c.userService.GetByPhone(ctx.Context(), ctx.Params("phone"))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.UserEnvelope{User: user})
}

func (c *userController) UpdateContact(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	var req dto.UpdateContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request data")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	user, err := c.userService.UpdateContact(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.UserEnvelope{User: user})
}

func (c *userController) GetActivity(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	activities, err := c.userService.GetActivity(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ActivitiesEnvelope{Activities: activities})
}

func parseIdParam(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, serverutils.NewValidationError("Invalid " + name)
	}
	return id, nil
}
