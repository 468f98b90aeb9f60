// FILE: internal/service/roadmap_service.go
package service

import (
	"context"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/repository/specification"
	"micro-automation-hub/internal/repository/unitofwork"

	"golang.org/x/sync/errgroup"
)

type IRoadmapService interface {
	Overview(ctx context.Context) (*dto.RoadmapResponse, error)
}

type roadmapService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRoadmapService(uowFactory unitofwork.RepositoryFactory) IRoadmapService {
	return &roadmapService{uowFactory: uowFactory}
}

func (s *roadmapService) Overview(ctx context.Context) (*dto.RoadmapResponse, error) {
	res := &dto.RoadmapResponse{
		Milestones: make([]*dto.RoadmapMilestoneResponse, 0),
		Feedback:   make([]*dto.FeedbackResponse, 0),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		milestones, err := s.uowFactory.NewUnitOfWork(gctx).RoadmapRepository().FindAll(gctx, specification.OrderBy{Field: "focus"})
		if err != nil {
			return err
		}
		for _, m := range milestones {
			res.Milestones = append(res.Milestones, &dto.RoadmapMilestoneResponse{
				Quarter: m.Quarter,
				Focus:   m.Focus,
				Detail:  m.Detail,
				Status:  m.Status,
			})
		}
		return nil
	})

	g.Go(func() error {
		items, err := s.uowFactory.NewUnitOfWork(gctx).FeedbackRepository().FindAll(gctx, specification.OrderBy{Field: "title"})
		if err != nil {
			return err
		}
		res.Feedback = toFeedbackResponses(items)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
