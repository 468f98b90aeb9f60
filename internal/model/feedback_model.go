package model

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Votes     int       `gorm:"not null;default:0"`
	State     string    `gorm:"type:varchar(50);not null"`
	SortOrder int       `gorm:"not null;default:0;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (FeedbackItem) TableName() string {
	return "feedback_items"
}
