package mapper

import (
	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/model"
)

type RoadmapMapper struct{}

func NewRoadmapMapper() *RoadmapMapper {
	return &RoadmapMapper{}
}

func (m *RoadmapMapper) ToEntity(r *model.RoadmapMilestone) *entity.RoadmapMilestone {
	if r == nil {
		return nil
	}
	return &entity.RoadmapMilestone{
		Id:        r.Id,
		Quarter:   r.Quarter,
		Focus:     r.Focus,
		Detail:    r.Detail,
		Status:    r.Status,
		SortOrder: r.SortOrder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *RoadmapMapper) ToModel(r *entity.RoadmapMilestone) *model.RoadmapMilestone {
	if r == nil {
		return nil
	}
	return &model.RoadmapMilestone{
		Id:        r.Id,
		Quarter:   r.Quarter,
		Focus:     r.Focus,
		Detail:    r.Detail,
		Status:    r.Status,
		SortOrder: r.SortOrder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *RoadmapMapper) ToEntities(models []*model.RoadmapMilestone) []*entity.RoadmapMilestone {
	out := make([]*entity.RoadmapMilestone, len(models))
	for i, r := range models {
		out[i] = m.ToEntity(r)
	}
	return out
}
