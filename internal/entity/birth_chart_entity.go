package entity

import (
	"encoding/json"
	"time"
)

// BirthChart is write-once: charts are generated at most once per user and
// never updated.
type BirthChart struct {
	Id        int64
	UserId    int64
	ChartData json.RawMessage
	Houses    json.RawMessage
	Planets   json.RawMessage
	Aspects   json.RawMessage
	CreatedAt time.Time
}
