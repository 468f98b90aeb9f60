package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FailureMode struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Path        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Playbooks   int       `gorm:"not null;default:0"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (FailureMode) TableName() string {
	return "failure_modes"
}

type ActivityEntry struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Actor      string            `gorm:"type:varchar(100);not null"`
	Action     string            `gorm:"type:text;not null"`
	EventType  string            `gorm:"type:varchar(50);index"`
	Payload    datatypes.JSONMap `gorm:"type:jsonb"`
	OccurredAt time.Time         `gorm:"not null;index"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
}

func (ActivityEntry) TableName() string {
	return "activity_entries"
}
