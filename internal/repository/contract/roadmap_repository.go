package contract

import (
	"context"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/repository/specification"
)

type RoadmapRepository interface {
	Upsert(ctx context.Context, milestone *entity.RoadmapMilestone) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapMilestone, error)
}
