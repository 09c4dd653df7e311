package contract

import (
	"context"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/repository/specification"
)

type BirthChartRepository interface {
	Create(ctx context.Context, chart *entity.BirthChart) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BirthChart, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BirthChart, error)
}
