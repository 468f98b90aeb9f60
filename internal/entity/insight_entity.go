package entity

import (
	"time"

	"github.com/google/uuid"
)

type InsightKpi struct {
	Id          uuid.UUID
	Title       string
	Value       string
	Delta       string
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InsightAdoption struct {
	Id        uuid.UUID
	Team      string
	Metric    string
	Detail    string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type InsightIncident struct {
	Id          uuid.UUID
	Label       string // "P0", "P1", ...
	Count       int
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
