package implementation

import (
	"context"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/mapper"
	"astro-chat-be/internal/model"
	"astro-chat-be/internal/repository/contract"
	"astro-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewUserActivityRepository(db *gorm.DB) contract.UserActivityRepository {
	return &UserActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *UserActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserActivityRepositoryImpl) Create(ctx context.Context, activity *entity.UserActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserActivity, error) {
	var models []*model.UserActivity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserActivity, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
