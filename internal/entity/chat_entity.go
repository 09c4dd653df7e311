package entity

import (
	"time"
)

type ChatSession struct {
	Id        int64
	UserId    int64
	BotType   string
	IsActive  bool
	CreatedAt time.Time
}

// ChatMessage is append-only; a session's transcript is ordered by CreatedAt
// ascending with Id as the tiebreaker.
type ChatMessage struct {
	Id        int64
	SessionId int64
	Role      string
	Content   string
	CreatedAt time.Time
}
