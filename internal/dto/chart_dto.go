package dto

import (
	"encoding/json"
	"time"
)

type GenerateChartRequest struct {
	UserId int64 `json:"userId" validate:"required,gt=0"`
}

type BirthChartResponse struct {
	Id        int64           `json:"id"`
	UserId    int64           `json:"userId"`
	ChartData json.RawMessage `json:"chartData"`
	Houses    json.RawMessage `json:"houses"`
	Planets   json.RawMessage `json:"planets"`
	Aspects   json.RawMessage `json:"aspects"`
	CreatedAt time.Time       `json:"createdAt"`
}

type BirthChartEnvelope struct {
	BirthChart *BirthChartResponse `json:"birthChart"`
}
