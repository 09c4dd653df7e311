package service

import (
	"context"

	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/pkg/logger"
	"astro-chat-be/internal/pkg/serverutils"
	"astro-chat-be/internal/repository/specification"
	"astro-chat-be/internal/repository/unitofwork"
	"astro-chat-be/pkg/events"
)

type IUserService interface {
	Register(ctx context.Context, request *dto.RegisterRequest) (*dto.UserResponse, error)
	GetByPhone(ctx context.Context, phone string) (*dto.UserResponse, error)
	GetById(ctx context.Context, id int64) (*dto.UserResponse, error)
	UpdateContact(ctx context.Context, id int64, request *dto.UpdateContactRequest) (*dto.UserResponse, error)
	GetActivity(ctx context.Context, id int64) ([]*dto.UserActivityResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IUserService {
	return &userService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *userService) Register(ctx context.Context, request *dto.RegisterRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: request.Phone})
	if err != nil {
		return nil, serverutils.NewInternalError("Registration failed", err)
	}
	if existing != nil {
		return nil, serverutils.NewDuplicateError("User with this phone number already exists")
	}

	user := &entity.User{
		Phone:            request.Phone,
		Name:             request.Name,
		DateOfBirth:      request.DateOfBirth,
		BirthLocation:    request.BirthLocation,
		UnknownBirthTime: request.UnknownBirthTime,
	}
	if request.BirthTime != "" {
		user.BirthTime = &request.BirthTime
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, serverutils.NewInternalError("Registration failed", err)
	}

	if err := s.publisher.PublishActivity(ctx, events.UserActivityEvent{
		UserID: user.Id,
		Action: events.ActionRegistered,
		Details: map[string]string{
			"phone": user.Phone,
		},
	}); err != nil {
		s.logger.Warn("UserService", "Failed to publish registration activity", map[string]interface{}{"error": err.Error()})
	}

	return toUserResponse(user), nil
}

func (s *userService) GetByPhone(ctx context.Context, phone string) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: phone})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}
	return toUserResponse(user), nil
}

func (s *userService) GetById(ctx context.Context, id int64) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateContact(ctx context.Context, id int64, request *dto.UpdateContactRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	user.Email = &request.Email
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, serverutils.NewInternalError("Failed to update contact", err)
	}
	return toUserResponse(user), nil
}

func (s *userService) GetActivity(ctx context.Context, id int64) ([]*dto.UserActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	activities, err := uow.UserActivityRepository().FindAll(ctx,
		specification.ByUserID{UserID: id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get activity", err)
	}

	out := make([]*dto.UserActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = &dto.UserActivityResponse{
			Id:        a.Id,
			UserId:    a.UserId,
			Action:    a.Action,
			Details:   a.Details,
			CreatedAt: a.CreatedAt,
		}
	}
	return out, nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:               user.Id,
		Phone:            user.Phone,
		Email:            user.Email,
		Name:             user.Name,
		DateOfBirth:      user.DateOfBirth,
		BirthTime:        user.BirthTime,
		BirthLocation:    user.BirthLocation,
		UnknownBirthTime: user.UnknownBirthTime,
		CreatedAt:        user.CreatedAt,
	}
}
