package mapper

import (
	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/model"

	"gorm.io/datatypes"
)

type FailureAtlasMapper struct{}

func NewFailureAtlasMapper() *FailureAtlasMapper {
	return &FailureAtlasMapper{}
}

func (m *FailureAtlasMapper) ModeToEntity(f *model.FailureMode) *entity.FailureMode {
	if f == nil {
		return nil
	}
	return &entity.FailureMode{
		Id:          f.Id,
		Path:        f.Path,
		Title:       f.Title,
		Description: f.Description,
		Playbooks:   f.Playbooks,
		SortOrder:   f.SortOrder,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *FailureAtlasMapper) ModeToModel(f *entity.FailureMode) *model.FailureMode {
	if f == nil {
		return nil
	}
	return &model.FailureMode{
		Id:          f.Id,
		Path:        f.Path,
		Title:       f.Title,
		Description: f.Description,
		Playbooks:   f.Playbooks,
		SortOrder:   f.SortOrder,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *FailureAtlasMapper) ModesToEntities(models []*model.FailureMode) []*entity.FailureMode {
	out := make([]*entity.FailureMode, len(models))
	for i, f := range models {
		out[i] = m.ModeToEntity(f)
	}
	return out
}

func (m *FailureAtlasMapper) ActivityToEntity(a *model.ActivityEntry) *entity.ActivityEntry {
	if a == nil {
		return nil
	}
	return &entity.ActivityEntry{
		Id:         a.Id,
		Actor:      a.Actor,
		Action:     a.Action,
		EventType:  a.EventType,
		Payload:    map[string]interface{}(a.Payload),
		OccurredAt: a.OccurredAt,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *FailureAtlasMapper) ActivityToModel(a *entity.ActivityEntry) *model.ActivityEntry {
	if a == nil {
		return nil
	}
	return &model.ActivityEntry{
		Id:         a.Id,
		Actor:      a.Actor,
		Action:     a.Action,
		EventType:  a.EventType,
		Payload:    datatypes.JSONMap(a.Payload),
		OccurredAt: a.OccurredAt,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *FailureAtlasMapper) ActivitiesToEntities(models []*model.ActivityEntry) []*entity.ActivityEntry {
	out := make([]*entity.ActivityEntry, len(models))
	for i, a := range models {
		out[i] = m.ActivityToEntity(a)
	}
	return out
}
