package model

import (
	"time"

	"github.com/google/uuid"
)

type RoadmapMilestone struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Quarter   string    `gorm:"type:varchar(10);not null"`
	Focus     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Detail    string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(50);not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (RoadmapMilestone) TableName() string {
	return "roadmap_milestones"
}
