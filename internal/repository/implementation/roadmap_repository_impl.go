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

type RoadmapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoadmapMapper
}

func NewRoadmapRepository(db *gorm.DB) contract.RoadmapRepository {
	return &RoadmapRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoadmapMapper(),
	}
}

func (r *RoadmapRepositoryImpl) Upsert(ctx context.Context, milestone *entity.RoadmapMilestone) error {
	m := r.mapper.ToModel(milestone)
	if err := r.db.WithContext(ctx).Clauses(upsertOn("focus", "quarter", "detail", "status", "sort_order")).Create(m).Error; err != nil {
		return err
	}
	*milestone = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoadmapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapMilestone, error) {
	var models []*model.RoadmapMilestone
	query := applySpecifications(scope.OrderBySortOrder(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
