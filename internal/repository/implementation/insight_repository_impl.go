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

type InsightRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InsightMapper
}

func NewInsightRepository(db *gorm.DB) contract.InsightRepository {
	return &InsightRepositoryImpl{
		db:     db,
		mapper: mapper.NewInsightMapper(),
	}
}

func (r *InsightRepositoryImpl) UpsertKpi(ctx context.Context, kpi *entity.InsightKpi) error {
	m := r.mapper.KpiToModel(kpi)
	if err := r.db.WithContext(ctx).Clauses(upsertOn("title", "value", "delta", "description", "sort_order")).Create(m).Error; err != nil {
		return err
	}
	*kpi = *r.mapper.KpiToEntity(m)
	return nil
}

func (r *InsightRepositoryImpl) UpsertAdoption(ctx context.Context, adoption *entity.InsightAdoption) error {
	m := r.mapper.AdoptionToModel(adoption)
	if err := r.db.WithContext(ctx).Clauses(upsertOn("team", "metric", "detail", "sort_order")).Create(m).Error; err != nil {
		return err
	}
	*adoption = *r.mapper.AdoptionToEntity(m)
	return nil
}

func (r *InsightRepositoryImpl) UpsertIncident(ctx context.Context, incident *entity.InsightIncident) error {
	m := r.mapper.IncidentToModel(incident)
	if err := r.db.WithContext(ctx).Clauses(upsertOn("label", "count", "description", "sort_order")).Create(m).Error; err != nil {
		return err
	}
	*incident = *r.mapper.IncidentToEntity(m)
	return nil
}

func (r *InsightRepositoryImpl) FindKpis(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightKpi, error) {
	var models []*model.InsightKpi
	query := applySpecifications(scope.OrderBySortOrder(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.KpisToEntities(models), nil
}

func (r *InsightRepositoryImpl) FindAdoption(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightAdoption, error) {
	var models []*model.InsightAdoption
	query := applySpecifications(scope.OrderBySortOrder(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.AdoptionsToEntities(models), nil
}

func (r *InsightRepositoryImpl) FindIncidents(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightIncident, error) {
	var models []*model.InsightIncident
	query := applySpecifications(scope.OrderBySortOrder(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.IncidentsToEntities(models), nil
}
