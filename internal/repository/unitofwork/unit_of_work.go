package unitofwork

import (
	"context"

	"micro-automation-hub/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AutomationRepository() contract.AutomationRepository
	InsightRepository() contract.InsightRepository
	RoadmapRepository() contract.RoadmapRepository
	FeedbackRepository() contract.FeedbackRepository
	FailureAtlasRepository() contract.FailureAtlasRepository
}
