package service

import (
	"context"
	"testing"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomationList(t *testing.T) {
	factory := newFakeFactory()
	id := uuid.New()
	factory.uow.automation.items = []*entity.Automation{{
		Id:              id,
		Name:            "Invoice triage",
		Summary:         "Routes vendor invoices",
		Owner:           "Finance Ops",
		Status:          "Stable",
		LastRunRelative: "3m ago",
		RunRate:         "148 runs / wk",
		SortOrder:       0,
	}}

	res, err := NewAutomationService(factory).List(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, &dto.AutomationResponse{
		Id:              id,
		Name:            "Invoice triage",
		Summary:         "Routes vendor invoices",
		Owner:           "Finance Ops",
		Status:          "Stable",
		LastRunRelative: "3m ago",
		RunRate:         "148 runs / wk",
	}, res[0])
	// sort_order comes from the repository; name breaks ties.
	assert.Equal(t, []specification.Specification{specification.OrderBy{Field: "name"}}, factory.uow.automation.specs)
}

func TestAutomationListEmpty(t *testing.T) {
	res, err := NewAutomationService(newFakeFactory()).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestRoadmapOverview(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.roadmap.milestones = []*entity.RoadmapMilestone{
		{Quarter: "Q3", Focus: "Evaluation harness", Detail: "Golden sets per team", Status: "In progress"},
	}
	factory.uow.feedback.items = []*entity.FeedbackItem{{Id: uuid.New(), Title: "Slack digest", State: "Planned", Votes: 7}}

	res, err := NewRoadmapService(factory).Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Milestones, 1)
	assert.Equal(t, &dto.RoadmapMilestoneResponse{
		Quarter: "Q3",
		Focus:   "Evaluation harness",
		Detail:  "Golden sets per team",
		Status:  "In progress",
	}, res.Milestones[0])
	require.Len(t, res.Feedback, 1)
	assert.Equal(t, 7, res.Feedback[0].Votes)
	assert.Equal(t, []specification.Specification{specification.OrderBy{Field: "focus"}}, factory.uow.roadmap.specs)
}
