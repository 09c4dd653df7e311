package implementation

import (
	"context"
	"errors"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/mapper"
	"astro-chat-be/internal/model"
	"astro-chat-be/internal/repository/contract"
	"astro-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BirthChartRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChartMapper
}

func NewBirthChartRepository(db *gorm.DB) contract.BirthChartRepository {
	return &BirthChartRepositoryImpl{
		db:     db,
		mapper: mapper.NewChartMapper(),
	}
}

func (r *BirthChartRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BirthChartRepositoryImpl) Create(ctx context.Context, chart *entity.BirthChart) error {
	m := r.mapper.ToModel(chart)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chart = *r.mapper.ToEntity(m)
	return nil
}

func (r *BirthChartRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BirthChart, error) {
	var m model.BirthChart
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BirthChartRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BirthChart, error) {
	var models []*model.BirthChart
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.BirthChart, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
