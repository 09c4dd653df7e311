package unitofwork

import (
	"context"

	"astro-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BirthChartRepository() contract.BirthChartRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	UserActivityRepository() contract.UserActivityRepository
}
