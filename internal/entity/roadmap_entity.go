package entity

import (
	"time"

	"github.com/google/uuid"
)

type RoadmapMilestone struct {
	Id        uuid.UUID
	Quarter   string
	Focus     string
	Detail    string
	Status    string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
