package main

import (
	"log"

	"micro-automation-hub/internal/config"
	"micro-automation-hub/internal/model"
	"micro-automation-hub/pkg/database"
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

	log.Println("Step 1: Setting up extensions...")
	// gen_random_uuid() backs every primary key default.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	models := []interface{}{
		&model.Automation{},
		&model.InsightKpi{},
		&model.InsightAdoption{},
		&model.InsightIncident{},
		&model.RoadmapMilestone{},
		&model.FeedbackItem{},
		&model.FailureMode{},
		&model.ActivityEntry{},
	}

	log.Printf("Step 2: Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
