package model

import (
	"time"

	"github.com/google/uuid"
)

type Automation struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Summary         string    `gorm:"type:text;not null"`
	Owner           string    `gorm:"type:varchar(255);not null"`
	Status          string    `gorm:"type:varchar(50);not null"`
	LastRunRelative string    `gorm:"type:varchar(50);not null"`
	RunRate         string    `gorm:"type:varchar(50);not null"`
	SortOrder       int       `gorm:"not null;default:0;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Automation) TableName() string {
	return "automations"
}
