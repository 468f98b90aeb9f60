package contract

import (
	"context"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/repository/specification"
)

type InsightRepository interface {
	UpsertKpi(ctx context.Context, kpi *entity.InsightKpi) error
	UpsertAdoption(ctx context.Context, adoption *entity.InsightAdoption) error
	UpsertIncident(ctx context.Context, incident *entity.InsightIncident) error

	FindKpis(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightKpi, error)
	FindAdoption(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightAdoption, error)
	FindIncidents(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightIncident, error)
}
