package controller

import (
	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/pkg/serverutils"
	"astro-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat/start", c.Start)
	r.Post("/chat/message", c.SendMessage)
	r.Get("/chat/sessions/:userId", c.GetSessions)
	r.Get("/chat/:sessionId/messages", c.GetMessages)
}

func (c *chatController) Start(ctx *fiber.Ctx) error {
	var req dto.StartChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Failed to start chat session")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	session, err := c.chatService.StartSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.SessionEnvelope{Session: session})
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Failed to send message")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	sessionId, err := parseIdParam(ctx, "sessionId")
	if err != nil {
		return err
	}

	messages, err := c.chatService.GetMessages(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.MessagesEnvelope{Messages: messages})
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	sessions, err := c.chatService.GetSessionsByUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.SessionsEnvelope{Sessions: sessions})
}
