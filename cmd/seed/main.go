package main

import (
	"context"
	"log"
	"os"
	"time"

	"micro-automation-hub/internal/config"
	"micro-automation-hub/internal/repository/unitofwork"
	"micro-automation-hub/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Fatal("Error: Failed to begin transaction:", err)
	}
	defer uow.Rollback()

	color.Cyan("🌱 Seeding Micro Automation Hub fixtures\n")

	if err := seed(ctx, uow); err != nil {
		color.Red("Seed failed: %v", err)
		os.Exit(1)
	}

	if err := uow.Commit(); err != nil {
		color.Red("Commit failed: %v", err)
		os.Exit(1)
	}
	color.Green("✅ Seeding completed")
}

// seed upserts every fixture on its natural key, so it can be re-run safely.
// Display order follows the fixture order.
func seed(ctx context.Context, uow unitofwork.UnitOfWork) error {
	step("Automations")
	for i := range automations {
		automations[i].SortOrder = i
		if err := uow.AutomationRepository().Upsert(ctx, &automations[i]); err != nil {
			return err
		}
	}
	done(len(automations))

	step("Insights")
	insights := uow.InsightRepository()
	for i := range kpis {
		kpis[i].SortOrder = i
		if err := insights.UpsertKpi(ctx, &kpis[i]); err != nil {
			return err
		}
	}
	for i := range adoption {
		adoption[i].SortOrder = i
		if err := insights.UpsertAdoption(ctx, &adoption[i]); err != nil {
			return err
		}
	}
	for i := range incidents {
		incidents[i].SortOrder = i
		if err := insights.UpsertIncident(ctx, &incidents[i]); err != nil {
			return err
		}
	}
	done(len(kpis) + len(adoption) + len(incidents))

	step("Roadmap milestones")
	for i := range milestones {
		milestones[i].SortOrder = i
		if err := uow.RoadmapRepository().Upsert(ctx, &milestones[i]); err != nil {
			return err
		}
	}
	done(len(milestones))

	step("Feedback board")
	for i := range feedback {
		feedback[i].SortOrder = i
		if err := uow.FeedbackRepository().Upsert(ctx, &feedback[i]); err != nil {
			return err
		}
	}
	done(len(feedback))

	step("Failure atlas")
	atlas := uow.FailureAtlasRepository()
	for i := range failureModes {
		failureModes[i].SortOrder = i
		if err := atlas.UpsertMode(ctx, &failureModes[i]); err != nil {
			return err
		}
	}

	// Activity has no natural key; only seed an empty feed.
	existing, err := atlas.FindActivity(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		color.Yellow("   activity feed already has %d entries, skipping", len(existing))
		done(len(failureModes))
		return nil
	}
	entries := activity(time.Now())
	for i := range entries {
		if err := atlas.CreateActivity(ctx, &entries[i]); err != nil {
			return err
		}
	}
	done(len(failureModes) + len(entries))

	return nil
}

func step(name string) {
	color.Yellow("\n→ %s", name)
}

func done(n int) {
	color.Green("   %d rows", n)
}
