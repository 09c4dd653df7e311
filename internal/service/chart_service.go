package service

import (
	"context"

	"astro-chat-be/internal/constant"
	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/pkg/logger"
	"astro-chat-be/internal/pkg/serverutils"
	"astro-chat-be/internal/repository/specification"
	"astro-chat-be/internal/repository/unitofwork"
	"astro-chat-be/pkg/astro"
	"astro-chat-be/pkg/events"
)

type IChartService interface {
	Generate(ctx context.Context, userId int64) (*dto.BirthChartResponse, error)
	GetByUserId(ctx context.Context, userId int64) (*dto.BirthChartResponse, error)
}

type chartService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     astro.ChartEngine
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewChartService(
	uowFactory unitofwork.RepositoryFactory,
	engine astro.ChartEngine,
	publisher IPublisherService,
	log logger.ILogger,
) IChartService {
	return &chartService{
		uowFactory: uowFactory,
		engine:     engine,
		publisher:  publisher,
		logger:     log,
	}
}

// Generate computes and stores the natal chart for a user. The operation is
// idempotent: an already stored chart is returned as-is without invoking the
// engine again.
func (s *chartService) Generate(ctx context.Context, userId int64) (*dto.BirthChartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to generate birth chart", err)
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	existing, err := uow.BirthChartRepository().FindOne(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to generate birth chart", err)
	}
	if existing != nil {
		return toBirthChartResponse(existing), nil
	}

	birthTime := constant.DefaultBirthTime
	if !user.UnknownBirthTime && user.BirthTime != nil && *user.BirthTime != "" {
		birthTime = *user.BirthTime
	}

	result, err := s.engine.Generate(ctx, user.DateOfBirth, birthTime, user.BirthLocation)
	if err != nil {
		return nil, serverutils.NewUpstreamError("Failed to generate birth chart", err)
	}

	chart := &entity.BirthChart{
		UserId:    userId,
		ChartData: result.ChartData,
		Houses:    result.Houses,
		Planets:   result.Planets,
		Aspects:   result.Aspects,
	}
	if err := uow.BirthChartRepository().Create(ctx, chart); err != nil {
		return nil, serverutils.NewInternalError("Failed to generate birth chart", err)
	}

	if err := s.publisher.PublishActivity(ctx, events.UserActivityEvent{
		UserID: userId,
		Action: events.ActionChartGenerated,
	}); err != nil {
		s.logger.Warn("ChartService", "Failed to publish chart activity", map[string]interface{}{"error": err.Error()})
	}

	return toBirthChartResponse(chart), nil
}

func (s *chartService) GetByUserId(ctx context.Context, userId int64) (*dto.BirthChartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chart, err := uow.BirthChartRepository().FindOne(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to get birth chart", err)
	}
	if chart == nil {
		return nil, serverutils.NewNotFoundError("Birth chart not found")
	}
	return toBirthChartResponse(chart), nil
}

func toBirthChartResponse(chart *entity.BirthChart) *dto.BirthChartResponse {
	return &dto.BirthChartResponse{
		Id:        chart.Id,
		UserId:    chart.UserId,
		ChartData: chart.ChartData,
		Houses:    chart.Houses,
		Planets:   chart.Planets,
		Aspects:   chart.Aspects,
		CreatedAt: chart.CreatedAt,
	}
}
