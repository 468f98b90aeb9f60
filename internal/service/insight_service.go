// FILE: internal/service/insight_service.go
package service

import (
	"context"
	"fmt"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/repository/specification"
	"micro-automation-hub/internal/repository/unitofwork"

	"golang.org/x/sync/errgroup"
)

// TeamNames is the fixed team catalogue offered by the adoption-by-team view.
var TeamNames = []string{
	"Loading and Processing",
	"Collection",
	"Customization",
	"Assembly",
	"Analysis",
	"Client Service",
	"Quality Control",
	"Issue Resolution",
	"Data Protection",
}

type IInsightService interface {
	Overview(ctx context.Context) (*dto.InsightsResponse, error)
	Teams() []string
	TeamMetrics(team string) (*dto.TeamMetricsResponse, error)
}

type insightService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInsightService(uowFactory unitofwork.RepositoryFactory) IInsightService {
	return &insightService{uowFactory: uowFactory}
}

// Overview loads the three insight tables concurrently; the first failure cancels the rest.
func (s *insightService) Overview(ctx context.Context) (*dto.InsightsResponse, error) {
	res := &dto.InsightsResponse{
		Kpis:      make([]*dto.InsightKpiResponse, 0),
		Adoption:  make([]*dto.InsightAdoptionResponse, 0),
		Incidents: make([]*dto.InsightIncidentResponse, 0),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		kpis, err := s.uowFactory.NewUnitOfWork(gctx).InsightRepository().FindKpis(gctx, specification.OrderBy{Field: "title"})
		if err != nil {
			return fmt.Errorf("load kpis: %w", err)
		}
		for _, k := range kpis {
			res.Kpis = append(res.Kpis, &dto.InsightKpiResponse{Title: k.Title, Value: k.Value, Delta: k.Delta, Description: k.Description})
		}
		return nil
	})

	g.Go(func() error {
		adoption, err := s.uowFactory.NewUnitOfWork(gctx).InsightRepository().FindAdoption(gctx, specification.OrderBy{Field: "team"})
		if err != nil {
			return fmt.Errorf("load adoption: %w", err)
		}
		for _, a := range adoption {
			res.Adoption = append(res.Adoption, &dto.InsightAdoptionResponse{Team: a.Team, Metric: a.Metric, Detail: a.Detail})
		}
		return nil
	})

	g.Go(func() error {
		incidents, err := s.uowFactory.NewUnitOfWork(gctx).InsightRepository().FindIncidents(gctx, specification.OrderBy{Field: "label"})
		if err != nil {
			return fmt.Errorf("load incidents: %w", err)
		}
		for _, in := range incidents {
			res.Incidents = append(res.Incidents, &dto.InsightIncidentResponse{Label: in.Label, Count: in.Count, Description: in.Description})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *insightService) Teams() []string {
	return append([]string(nil), TeamNames...)
}

// TeamMetrics derives stable placeholder percentages from the team name until
// per-team measurements are recorded.
func (s *insightService) TeamMetrics(team string) (*dto.TeamMetricsResponse, error) {
	if !knownTeam(team) {
		return nil, serverutils.NotFound("Unknown team")
	}

	h := 0
	for _, r := range team {
		h += int(r)
	}

	return &dto.TeamMetricsResponse{
		Team:       team,
		Acceptance: fmt.Sprintf("%d%%", 75+h%20),
		Adoption:   fmt.Sprintf("%d%%", 70+(h*2)%25),
		Roi:        fmt.Sprintf("%d%%", 50+(h*3)%30),
	}, nil
}

func knownTeam(team string) bool {
	for _, t := range TeamNames {
		if t == team {
			return true
		}
	}
	return false
}
