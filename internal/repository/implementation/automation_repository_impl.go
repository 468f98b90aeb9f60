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

type AutomationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AutomationMapper
}

func NewAutomationRepository(db *gorm.DB) contract.AutomationRepository {
	return &AutomationRepositoryImpl{
		db:     db,
		mapper: mapper.NewAutomationMapper(),
	}
}

func (r *AutomationRepositoryImpl) Upsert(ctx context.Context, automation *entity.Automation) error {
	m := r.mapper.ToModel(automation)
	err := r.db.WithContext(ctx).
		Clauses(upsertOn("name", "summary", "owner", "status", "last_run_relative", "run_rate", "sort_order")).
		Create(m).Error
	if err != nil {
		return err
	}
	*automation = *r.mapper.ToEntity(m)
	return nil
}

func (r *AutomationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Automation, error) {
	var models []*model.Automation
	query := applySpecifications(scope.OrderBySortOrder(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
