package service

import (
	"context"

	"astro-chat-be/internal/constant"
	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/pkg/logger"
	"astro-chat-be/internal/pkg/serverutils"
	"astro-chat-be/internal/repository/memory"
	"astro-chat-be/internal/repository/specification"
	"astro-chat-be/internal/repository/unitofwork"
	"astro-chat-be/pkg/astro/prompt"
	"astro-chat-be/pkg/events"
	"astro-chat-be/pkg/llm"
)

type IChatService interface {
	StartSession(ctx context.Context, request *dto.StartChatRequest) (*dto.ChatSessionResponse, error)
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageEnvelope, error)
	GetMessages(ctx context.Context, sessionId int64) ([]*dto.ChatMessageResponse, error)
	GetSessionsByUser(ctx context.Context, userId int64) ([]*dto.ChatSessionResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	catalog     *memory.BotCatalog
	llmProvider llm.LLMProvider
	publisher   IPublisherService
	logger      logger.ILogger
	personality prompt.Personality
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *memory.BotCatalog,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		catalog:     catalog,
		llmProvider: llmProvider,
		publisher:   publisher,
		logger:      log,
		personality: prompt.PersonalityNurturing,
	}
}

// StartSession returns the user's active session with the requested bot,
// creating one when none exists. A freshly created session gets a generated
// welcome message, but only when the user, their chart and the bot all
// resolve; otherwise the session starts empty.
func (s *chatService) StartSession(ctx context.Context, request *dto.StartChatRequest) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ChatSessionRepository().FindOne(ctx, specification.ActiveByUserAndBot{
		UserID:  request.UserId,
		BotType: request.BotType,
	})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to start chat session", err)
	}
	if existing != nil {
		return toSessionResponse(existing), nil
	}

	session := &entity.ChatSession{
		UserId:   request.UserId,
		BotType:  request.BotType,
		IsActive: true,
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, serverutils.NewInternalError("Failed to start chat session", err)
	}

	s.synthesizeWelcome(ctx, uow, session)

	if err := s.publisher.PublishActivity(ctx, events.UserActivityEvent{
		UserID: request.UserId,
		Action: events.ActionChatStarted,
		Details: map[string]string{
			"botType": request.BotType,
		},
	}); err != nil {
		s.logger.Warn("ChatService", "Failed to publish chat activity", map[string]interface{}{"error": err.Error()})
	}

	return toSessionResponse(session), nil
}

// synthesizeWelcome stores a generated greeting as the session's first
// assistant message. Missing user, chart or bot skips the welcome silently;
// generation failure falls back to a canned greeting.
func (s *chatService) synthesizeWelcome(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: session.UserId})
	if err != nil || user == nil {
		return
	}
	chart, err := uow.BirthChartRepository().FindOne(ctx, specification.ByUserID{UserID: session.UserId})
	if err != nil || chart == nil {
		return
	}
	bot := s.catalog.Get(session.BotType)
	if bot == nil {
		return
	}

	welcomePrompt := prompt.WelcomePrompt(user.Name, bot.Name, chart.Houses, chart.Planets, chart.Aspects)
	content, err := s.llmProvider.Generate(ctx, welcomePrompt,
		llm.WithTemperature(constant.WelcomeTemperature),
		llm.WithMaxTokens(constant.WelcomeMaxTokens),
	)
	if err != nil {
		s.logger.Warn("ChatService", "Welcome generation failed, using fallback", map[string]interface{}{"error": err.Error()})
		content = prompt.FallbackWelcome(user.Name)
	}

	message := &entity.ChatMessage{
		SessionId: session.Id,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   content,
	}
	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		s.logger.Error("ChatService", "Failed to store welcome message", map[string]interface{}{"error": err.Error()})
	}
}

// SendMessage persists the user's message, generates the astrologer's reply
// and persists that too. The user message is stored before any lookup, so it
// survives even when the reply cannot be produced.
func (s *chatService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageEnvelope, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userMessage := &entity.ChatMessage{
		SessionId: request.SessionId,
		Role:      request.Role,
		Content:   request.Content,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, serverutils.NewInternalError("Failed to send message", err)
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: request.SessionId})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to send message", err)
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Chat session not found")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: session.UserId})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to send message", err)
	}
	chart, err := uow.BirthChartRepository().FindOne(ctx, specification.ByUserID{UserID: session.UserId})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to send message", err)
	}
	bot := s.catalog.Get(session.BotType)

	if user == nil || chart == nil || bot == nil {
		return nil, serverutils.NewValidationError("Missing required data for chat")
	}

	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to send message", err)
	}

	systemPrompt := prompt.SystemPrompt(prompt.Context{
		UserName:        user.Name,
		BotSystemPrompt: bot.SystemPrompt,
		Personality:     s.personality,
		Houses:          chart.Houses,
		Planets:         chart.Planets,
		Aspects:         chart.Aspects,
	})

	conversation := buildConversation(systemPrompt, history, userMessage)

	reply, err := s.llmProvider.Chat(ctx, conversation,
		llm.WithTemperature(prompt.Temperature(s.personality)),
		llm.WithMaxTokens(constant.ChatMaxTokens),
	)
	if err != nil {
		return nil, serverutils.NewUpstreamError("Failed to send message", err)
	}
	if reply == "" {
		reply = constant.GenerationFailedMsg
	}

	aiMessage := &entity.ChatMessage{
		SessionId: session.Id,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   reply,
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, serverutils.NewInternalError("Failed to send message", err)
	}

	if err := s.publisher.PublishActivity(ctx, events.UserActivityEvent{
		UserID: session.UserId,
		Action: events.ActionMessageSent,
		Details: map[string]string{
			"botType": session.BotType,
		},
	}); err != nil {
		s.logger.Warn("ChatService", "Failed to publish message activity", map[string]interface{}{"error": err.Error()})
	}

	return &dto.SendMessageEnvelope{
		UserMessage: toMessageResponse(userMessage),
		AiMessage:   toMessageResponse(aiMessage),
	}, nil
}

// buildConversation arranges the system prompt, the trailing history window
// and the new user message into the provider conversation. The freshly stored
// user message is excluded from the history so it appears exactly once.
func buildConversation(systemPrompt string, history []*entity.ChatMessage, userMessage *entity.ChatMessage) []llm.Message {
	previous := make([]*entity.ChatMessage, 0, len(history))
	for _, msg := range history {
		if msg.Id == userMessage.Id {
			continue
		}
		previous = append(previous, msg)
	}
	if len(previous) > constant.HistoryWindow {
		previous = previous[len(previous)-constant.HistoryWindow:]
	}

	conversation := make([]llm.Message, 0, len(previous)+2)
	conversation = append(conversation, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, msg := range previous {
		conversation = append(conversation, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	conversation = append(conversation, llm.Message{Role: llm.RoleUser, Content: userMessage.Content})
	return conversation
}

func (s *chatService) GetMessages(ctx context.Context, sessionId int64) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get messages", err)
	}

	out := make([]*dto.ChatMessageResponse, len(messages))
	for i, msg := range messages {
		out[i] = toMessageResponse(msg)
	}
	return out, nil
}

func (s *chatService) GetSessionsByUser(ctx context.Context, userId int64) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.FilterBy{Field: "user_id", Value: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get chat sessions", err)
	}

	out := make([]*dto.ChatSessionResponse, len(sessions))
	for i, session := range sessions {
		out[i] = toSessionResponse(session)
	}
	return out, nil
}

func toSessionResponse(session *entity.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:        session.Id,
		UserId:    session.UserId,
		BotType:   session.BotType,
		IsActive:  session.IsActive,
		CreatedAt: session.CreatedAt,
	}
}

func toMessageResponse(message *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        message.Id,
		SessionId: message.SessionId,
		Role:      message.Role,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}
