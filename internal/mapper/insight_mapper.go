package mapper

import (
	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/model"
)

// InsightMapper covers the three insight tables; they share no columns so each gets its own pair.
type InsightMapper struct{}

func NewInsightMapper() *InsightMapper {
	return &InsightMapper{}
}

func (m *InsightMapper) KpiToEntity(k *model.InsightKpi) *entity.InsightKpi {
	if k == nil {
		return nil
	}
	return &entity.InsightKpi{
		Id:          k.Id,
		Title:       k.Title,
		Value:       k.Value,
		Delta:       k.Delta,
		Description: k.Description,
		SortOrder:   k.SortOrder,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

func (m *InsightMapper) KpiToModel(k *entity.InsightKpi) *model.InsightKpi {
	if k == nil {
		return nil
	}
	return &model.InsightKpi{
		Id:          k.Id,
		Title:       k.Title,
		Value:       k.Value,
		Delta:       k.Delta,
		Description: k.Description,
		SortOrder:   k.SortOrder,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

func (m *InsightMapper) KpisToEntities(models []*model.InsightKpi) []*entity.InsightKpi {
	out := make([]*entity.InsightKpi, len(models))
	for i, k := range models {
		out[i] = m.KpiToEntity(k)
	}
	return out
}

func (m *InsightMapper) AdoptionToEntity(a *model.InsightAdoption) *entity.InsightAdoption {
	if a == nil {
		return nil
	}
	return &entity.InsightAdoption{
		Id:        a.Id,
		Team:      a.Team,
		Metric:    a.Metric,
		Detail:    a.Detail,
		SortOrder: a.SortOrder,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *InsightMapper) AdoptionToModel(a *entity.InsightAdoption) *model.InsightAdoption {
	if a == nil {
		return nil
	}
	return &model.InsightAdoption{
		Id:        a.Id,
		Team:      a.Team,
		Metric:    a.Metric,
		Detail:    a.Detail,
		SortOrder: a.SortOrder,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *InsightMapper) AdoptionsToEntities(models []*model.InsightAdoption) []*entity.InsightAdoption {
	out := make([]*entity.InsightAdoption, len(models))
	for i, a := range models {
		out[i] = m.AdoptionToEntity(a)
	}
	return out
}

func (m *InsightMapper) IncidentToEntity(in *model.InsightIncident) *entity.InsightIncident {
	if in == nil {
		return nil
	}
	return &entity.InsightIncident{
		Id:          in.Id,
		Label:       in.Label,
		Count:       in.Count,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func (m *InsightMapper) IncidentToModel(in *entity.InsightIncident) *model.InsightIncident {
	if in == nil {
		return nil
	}
	return &model.InsightIncident{
		Id:          in.Id,
		Label:       in.Label,
		Count:       in.Count,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func (m *InsightMapper) IncidentsToEntities(models []*model.InsightIncident) []*entity.InsightIncident {
	out := make([]*entity.InsightIncident, len(models))
	for i, in := range models {
		out[i] = m.IncidentToEntity(in)
	}
	return out
}
