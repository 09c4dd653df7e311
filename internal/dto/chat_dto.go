package dto

import "time"

type StartChatRequest struct {
	UserId  int64  `json:"userId" validate:"required,gt=0"`
	BotType string `json:"botType" validate:"required"`
}

type SendMessageRequest struct {
	SessionId int64  `json:"sessionId" validate:"required,gt=0"`
	Role      string `json:"role" validate:"required,oneof=user assistant"`
	Content   string `json:"content" validate:"required,min=1"`
}

type ChatSessionResponse struct {
	Id        int64     `json:"id"`
	UserId    int64     `json:"userId"`
	BotType   string    `json:"botType"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatMessageResponse struct {
	Id        int64     `json:"id"`
	SessionId int64     `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type SessionEnvelope struct {
	Session *ChatSessionResponse `json:"session"`
}

type SessionsEnvelope struct {
	Sessions []*ChatSessionResponse `json:"sessions"`
}

type SendMessageEnvelope struct {
	UserMessage *ChatMessageResponse `json:"userMessage"`
	AiMessage   *ChatMessageResponse `json:"aiMessage"`
}

type MessagesEnvelope struct {
	Messages []*ChatMessageResponse `json:"messages"`
}
