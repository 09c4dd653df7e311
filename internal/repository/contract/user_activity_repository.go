package contract

import (
	"context"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/repository/specification"
)

type UserActivityRepository interface {
	Create(ctx context.Context, activity *entity.UserActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserActivity, error)
}
