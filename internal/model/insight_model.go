package model

import (
	"time"

	"github.com/google/uuid"
)

type InsightKpi struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Value       string    `gorm:"type:varchar(50);not null"`
	Delta       string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:text;not null"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (InsightKpi) TableName() string {
	return "insight_kpis"
}

type InsightAdoption struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Team      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Metric    string    `gorm:"type:varchar(50);not null"`
	Detail    string    `gorm:"type:text;not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (InsightAdoption) TableName() string {
	return "insight_adoptions"
}

type InsightIncident struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Label       string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Count       int       `gorm:"not null;default:0"`
	Description string    `gorm:"type:text;not null"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (InsightIncident) TableName() string {
	return "insight_incidents"
}
