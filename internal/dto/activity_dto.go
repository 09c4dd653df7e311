package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type UserActivityResponse struct {
	Id        uuid.UUID       `json:"id"`
	UserId    int64           `json:"userId"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type ActivitiesEnvelope struct {
	Activities []*UserActivityResponse `json:"activities"`
}
