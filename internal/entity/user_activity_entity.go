package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UserActivity records what users do, written asynchronously by the activity
// consumer.
type UserActivity struct {
	Id        uuid.UUID
	UserId    int64
	Action    string
	Details   json.RawMessage
	CreatedAt time.Time
}
