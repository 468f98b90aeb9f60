package entity

import (
	"time"

	"github.com/google/uuid"
)

type Automation struct {
	Id              uuid.UUID
	Name            string
	Summary         string
	Owner           string
	Status          string // "Stable" | "Advisory" | "Pilot" ...
	LastRunRelative string // e.g. "3m ago"
	RunRate         string // e.g. "148 runs / wk"
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
