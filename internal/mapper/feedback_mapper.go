package mapper

import (
	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.FeedbackItem) *entity.FeedbackItem {
	if f == nil {
		return nil
	}
	return &entity.FeedbackItem{
		Id:        f.Id,
		Title:     f.Title,
		Votes:     f.Votes,
		State:     f.State,
		SortOrder: f.SortOrder,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.FeedbackItem) *model.FeedbackItem {
	if f == nil {
		return nil
	}
	return &model.FeedbackItem{
		Id:        f.Id,
		Title:     f.Title,
		Votes:     f.Votes,
		State:     f.State,
		SortOrder: f.SortOrder,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(models []*model.FeedbackItem) []*entity.FeedbackItem {
	out := make([]*entity.FeedbackItem, len(models))
	for i, f := range models {
		out[i] = m.ToEntity(f)
	}
	return out
}
