package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/pkg/serverutils"
	"astro-chat-be/internal/repository/memory"
	"astro-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubUserService struct {
	user *dto.UserResponse
	err  error
}

func (s *stubUserService) Register(ctx context.Context, request *dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubUserService) GetByPhone(ctx context.Context, phone string) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubUserService) GetById(ctx context.Context, id int64) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubUserService) UpdateContact(ctx context.Context, id int64, request *dto.UpdateContactRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubUserService) GetActivity(ctx context.Context, id int64) ([]*dto.UserActivityResponse, error) {
	return nil, s.err
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	register(api)
	return app
}

func TestGetBots(t *testing.T) {
	botService := service.NewBotService(memory.NewBotCatalog())
	app := newTestApp(NewBotController(botService).RegisterRoutes)

	req := httptest.NewRequest("GET", "/api/bots", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body dto.BotsEnvelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Bots, 6)
	assert.Equal(t, "vedic-guru", body.Bots[0].Id)
}

func TestGetUserNotFound(t *testing.T) {
	stub := &stubUserService{err: serverutils.NewNotFoundError("User not found")}
	app := newTestApp(NewUserController(stub).RegisterRoutes)

	req := httptest.NewRequest("GET", "/api/user/+911111111111", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User not found", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	stub := &stubUserService{}
	app := newTestApp(NewUserController(stub).RegisterRoutes)

	// name and birth details missing
	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(`{"phone":"+919876543210"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["message"], "Invalid request data")
}

func TestSendMessageUpstreamFailure(t *testing.T) {
	stub := &stubChatService{err: serverutils.NewUpstreamError("Failed to send message", assert.AnError)}
	app := newTestApp(NewChatController(stub).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/chat/message", strings.NewReader(`{"sessionId":1,"role":"user","content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to send message", body["message"])
	assert.NotEmpty(t, body["error"])
}

type stubChatService struct {
	err error
}

func (s *stubChatService) StartSession(ctx context.Context, request *dto.StartChatRequest) (*dto.ChatSessionResponse, error) {
	return nil, s.err
}

func (s *stubChatService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageEnvelope, error) {
	return nil, s.err
}

func (s *stubChatService) GetMessages(ctx context.Context, sessionId int64) ([]*dto.ChatMessageResponse, error) {
	return nil, s.err
}

func (s *stubChatService) GetSessionsByUser(ctx context.Context, userId int64) ([]*dto.ChatSessionResponse, error) {
	return nil, s.err
}
