package service

import (
	"context"
	"errors"
	"testing"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMetrics(t *testing.T) {
	svc := NewInsightService(newFakeFactory())

	tests := []struct {
		team       string
		acceptance string
		adoption   string
		roi        string
	}{
		{"Collection", "91%", "92%", "68%"},
		{"Loading and Processing", "81%", "72%", "68%"},
	}

	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			res, err := svc.TeamMetrics(tt.team)
			require.NoError(t, err)
			assert.Equal(t, tt.acceptance, res.Acceptance)
			assert.Equal(t, tt.adoption, res.Adoption)
			assert.Equal(t, tt.roi, res.Roi)
		})
	}

	_, err := svc.TeamMetrics("Marketing")
	assert.Equal(t, 404, serverutils.StatusOf(err))
}

func TestTeamsReturnsCopy(t *testing.T) {
	svc := NewInsightService(newFakeFactory())

	teams := svc.Teams()
	require.Len(t, teams, 9)
	teams[0] = "changed"

	assert.Equal(t, "Loading and Processing", svc.Teams()[0])
}

func TestInsightOverview(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.insight.kpis = []*entity.InsightKpi{{Title: "Automation runs", Value: "12.4k", Delta: "+18%"}}
	factory.uow.insight.adoption = []*entity.InsightAdoption{{Team: "Finance", Metric: "62%"}}
	svc := NewInsightService(factory)

	res, err := svc.Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Kpis, 1)
	assert.Equal(t, "Automation runs", res.Kpis[0].Title)
	require.Len(t, res.Adoption, 1)
	assert.NotNil(t, res.Incidents)
	assert.Empty(t, res.Incidents)
}

func TestInsightOverviewFailsIfAnyLoadFails(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.insight.incidentsErr = errors.New("boom")

	_, err := NewInsightService(factory).Overview(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load incidents")
}
