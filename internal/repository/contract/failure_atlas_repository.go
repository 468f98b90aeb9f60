package contract

import (
	"context"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/repository/specification"
)

type FailureAtlasRepository interface {
	UpsertMode(ctx context.Context, mode *entity.FailureMode) error
	FindModes(ctx context.Context, specs ...specification.Specification) ([]*entity.FailureMode, error)

	CreateActivity(ctx context.Context, entry *entity.ActivityEntry) error
	FindActivity(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error)
}
