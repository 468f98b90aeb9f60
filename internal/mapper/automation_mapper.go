package mapper

import (
	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/model"
)

type AutomationMapper struct{}

func NewAutomationMapper() *AutomationMapper {
	return &AutomationMapper{}
}

func (m *AutomationMapper) ToEntity(a *model.Automation) *entity.Automation {
	if a == nil {
		return nil
	}
	return &entity.Automation{
		Id:              a.Id,
		Name:            a.Name,
		Summary:         a.Summary,
		Owner:           a.Owner,
		Status:          a.Status,
		LastRunRelative: a.LastRunRelative,
		RunRate:         a.RunRate,
		SortOrder:       a.SortOrder,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *AutomationMapper) ToModel(a *entity.Automation) *model.Automation {
	if a == nil {
		return nil
	}
	return &model.Automation{
		Id:              a.Id,
		Name:            a.Name,
		Summary:         a.Summary,
		Owner:           a.Owner,
		Status:          a.Status,
		LastRunRelative: a.LastRunRelative,
		RunRate:         a.RunRate,
		SortOrder:       a.SortOrder,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *AutomationMapper) ToEntities(models []*model.Automation) []*entity.Automation {
	entities := make([]*entity.Automation, len(models))
	for i, a := range models {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
