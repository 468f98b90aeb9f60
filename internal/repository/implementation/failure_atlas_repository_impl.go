package implementation

import (
	"context"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/mapper"
	"micro-automation-hub/internal/model"
	"micro-automation-hub/internal/repository/contract"
	"micro-automation-hub/internal/repository/scope"
	"micro-automation-hub/internal/repository/specification"

	"gorm.io/gorm"
)

type FailureAtlasRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FailureAtlasMapper
}

func NewFailureAtlasRepository(db *gorm.DB) contract.FailureAtlasRepository {
	return &FailureAtlasRepositoryImpl{
		db:     db,
		mapper: mapper.NewFailureAtlasMapper(),
	}
}

func (r *FailureAtlasRepositoryImpl) UpsertMode(ctx context.Context, mode *entity.FailureMode) error {
	m := r.mapper.ModeToModel(mode)
	if err := r.db.WithContext(ctx).Clauses(upsertOn("path", "title", "description", "playbooks", "sort_order")).Create(m).Error; err != nil {
		return err
	}
	*mode = *r.mapper.ModeToEntity(m)
	return nil
}

func (r *FailureAtlasRepositoryImpl) FindModes(ctx context.Context, specs ...specification.Specification) ([]*entity.FailureMode, error) {
	var models []*model.FailureMode
	query := applySpecifications(scope.OrderBySortOrder(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ModesToEntities(models), nil
}

func (r *FailureAtlasRepositoryImpl) CreateActivity(ctx context.Context, entry *entity.ActivityEntry) error {
	m := r.mapper.ActivityToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ActivityToEntity(m)
	return nil
}

func (r *FailureAtlasRepositoryImpl) FindActivity(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error) {
	var models []*model.ActivityEntry
	query := applySpecifications(scope.OrderByOccurredDesc(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ActivitiesToEntities(models), nil
}
