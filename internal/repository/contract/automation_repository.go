package contract

import (
	"context"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/repository/specification"
)

type AutomationRepository interface {
	Upsert(ctx context.Context, automation *entity.Automation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Automation, error)
}
