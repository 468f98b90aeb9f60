// FILE: internal/service/failure_atlas_service.go
package service

import (
	"context"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/repository/specification"
	"micro-automation-hub/internal/repository/unitofwork"
)

const recentActivityLimit = 20

type IFailureAtlasService interface {
	Overview(ctx context.Context, branch string) (*dto.FailureAtlasResponse, error)
}

type failureAtlasService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFailureAtlasService(uowFactory unitofwork.RepositoryFactory) IFailureAtlasService {
	return &failureAtlasService{uowFactory: uowFactory}
}

// Overview lists the taxonomy (optionally one branch, e.g. "llm") and the latest activity.
func (s *failureAtlasService) Overview(ctx context.Context, branch string) (*dto.FailureAtlasResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FailureAtlasRepository()

	specs := []specification.Specification{specification.OrderBy{Field: "path"}}
	if branch != "" {
		specs = append(specs, specification.ByPathPrefix{Prefix: branch})
	}
	modes, err := repo.FindModes(ctx, specs...)
	if err != nil {
		return nil, err
	}

	activity, err := repo.FindActivity(ctx, specification.Pagination{Limit: recentActivityLimit})
	if err != nil {
		return nil, err
	}

	res := &dto.FailureAtlasResponse{
		Modes:    make([]*dto.FailureModeResponse, 0, len(modes)),
		Activity: make([]*dto.ActivityResponse, 0, len(activity)),
	}
	for _, m := range modes {
		res.Modes = append(res.Modes, &dto.FailureModeResponse{
			Path:        m.Path,
			Title:       m.Title,
			Description: m.Description,
			Playbooks:   m.Playbooks,
		})
	}
	for _, a := range activity {
		res.Activity = append(res.Activity, &dto.ActivityResponse{
			Actor:     a.Actor,
			Action:    a.Action,
			EventType: a.EventType,
			Timestamp: a.OccurredAt,
		})
	}
	return res, nil
}
