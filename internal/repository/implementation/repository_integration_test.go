package implementation_test

import (
	"context"
	"os"
	"testing"
	"time"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/model"
	"micro-automation-hub/internal/repository/specification"
	"micro-automation-hub/internal/repository/unitofwork"
	"micro-automation-hub/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres inside a transaction that is always rolled back.
func newIntegrationUoW(t *testing.T) (unitofwork.UnitOfWork, context.Context) {
	t.Helper()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Automation{},
		&model.RoadmapMilestone{},
		&model.FeedbackItem{},
		&model.FailureMode{},
		&model.ActivityEntry{},
	))

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	t.Cleanup(func() { _ = uow.Rollback() })
	return uow, ctx
}

func TestFeedbackRepositoryIntegration(t *testing.T) {
	uow, ctx := newIntegrationUoW(t)
	repo := uow.FeedbackRepository()

	maxBefore, err := repo.MaxSortOrder(ctx)
	require.NoError(t, err)

	item := &entity.FeedbackItem{Title: "Integration idea " + uuid.NewString(), State: "Under review", SortOrder: maxBefore + 1}
	require.NoError(t, repo.Create(ctx, item))
	assert.NotEqual(t, uuid.Nil, item.Id)

	found, err := repo.FindOne(ctx, specification.ByTitle{Title: item.Title})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, item.Id, found.Id)

	maxAfter, err := repo.MaxSortOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, maxBefore+1, maxAfter)

	updated, err := repo.IncrementVotes(ctx, item.Id, 1)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.Votes)

	updated, err = repo.IncrementVotes(ctx, item.Id, -1)
	require.NoError(t, err)
	updated, err = repo.IncrementVotes(ctx, item.Id, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, updated.Votes)

	missing, err := repo.IncrementVotes(ctx, uuid.New(), 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFailureAtlasRepositoryIntegration(t *testing.T) {
	uow, ctx := newIntegrationUoW(t)
	repo := uow.FailureAtlasRepository()

	prefix := "it-" + uuid.NewString()[:8]
	mode := &entity.FailureMode{Path: prefix + "/latency", Title: "Latency", Playbooks: 1}
	require.NoError(t, repo.UpsertMode(ctx, mode))

	again := &entity.FailureMode{Path: mode.Path, Title: "Latency", Playbooks: 3}
	require.NoError(t, repo.UpsertMode(ctx, again))
	assert.Equal(t, mode.Id, again.Id)

	modes, err := repo.FindModes(ctx, specification.ByPathPrefix{Prefix: prefix})
	require.NoError(t, err)
	require.Len(t, modes, 1)
	assert.Equal(t, 3, modes[0].Playbooks)

	entry := &entity.ActivityEntry{
		Actor:      "Feedback board",
		Action:     "Submitted idea `x`",
		EventType:  "FEEDBACK_SUBMITTED",
		Payload:    map[string]interface{}{"title": "x", "votes": 2},
		OccurredAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateActivity(ctx, entry))

	feed, err := repo.FindActivity(ctx, specification.Pagination{Limit: 1})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "x", feed[0].Payload["title"])
}

// Rows below any seeded sort_order so they lead the listing.
const leadingSortOrder = -1_000_000

func TestAutomationRepositoryOrdering(t *testing.T) {
	uow, ctx := newIntegrationUoW(t)
	repo := uow.AutomationRepository()

	prefix := "it-" + uuid.NewString()[:8]
	for _, a := range []*entity.Automation{
		{Name: prefix + " zeta", Status: "Stable", SortOrder: leadingSortOrder + 1},
		{Name: prefix + " beta", Status: "Pilot", SortOrder: leadingSortOrder},
		{Name: prefix + " alpha", Status: "Advisory", SortOrder: leadingSortOrder},
	} {
		require.NoError(t, repo.Upsert(ctx, a))
	}

	all, err := repo.FindAll(ctx, specification.OrderBy{Field: "name"})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 3)

	assert.Equal(t,
		[]string{prefix + " alpha", prefix + " beta", prefix + " zeta"},
		[]string{all[0].Name, all[1].Name, all[2].Name})
}

func TestRoadmapRepositoryOrdering(t *testing.T) {
	uow, ctx := newIntegrationUoW(t)
	repo := uow.RoadmapRepository()

	prefix := "it-" + uuid.NewString()[:8]
	for _, m := range []*entity.RoadmapMilestone{
		{Focus: prefix + " a-first", Quarter: "Q4", SortOrder: leadingSortOrder + 1},
		{Focus: prefix + " c-tied", Quarter: "Q3", SortOrder: leadingSortOrder},
		{Focus: prefix + " b-tied", Quarter: "Q3", SortOrder: leadingSortOrder},
	} {
		require.NoError(t, repo.Upsert(ctx, m))
	}

	again := &entity.RoadmapMilestone{Focus: prefix + " c-tied", Quarter: "Q1", SortOrder: leadingSortOrder}
	require.NoError(t, repo.Upsert(ctx, again))

	all, err := repo.FindAll(ctx, specification.OrderBy{Field: "focus"})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 3)

	assert.Equal(t,
		[]string{prefix + " b-tied", prefix + " c-tied", prefix + " a-first"},
		[]string{all[0].Focus, all[1].Focus, all[2].Focus})
	assert.Equal(t, "Q1", all[1].Quarter)
}
