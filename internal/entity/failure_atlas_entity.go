package entity

import (
	"time"

	"github.com/google/uuid"
)

// FailureMode is one node of the failure taxonomy, addressed by a slash path like "llm/latency".
type FailureMode struct {
	Id          uuid.UUID
	Path        string
	Title       string
	Description string
	Playbooks   int
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityEntry records something that happened in the hub, shown in the activity feed.
type ActivityEntry struct {
	Id         uuid.UUID
	Actor      string
	Action     string
	EventType  string
	Payload    map[string]interface{}
	OccurredAt time.Time
	CreatedAt  time.Time
}
