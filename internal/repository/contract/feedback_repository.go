package contract

import (
	"context"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/repository/specification"

	"github.com/google/uuid"
)

type FeedbackRepository interface {
	Create(ctx context.Context, item *entity.FeedbackItem) error
	Upsert(ctx context.Context, item *entity.FeedbackItem) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeedbackItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackItem, error)
	// MaxSortOrder returns -1 when the table is empty.
	MaxSortOrder(ctx context.Context) (int, error)
	// IncrementVotes adds delta atomically and returns the updated row, or nil if id is unknown.
	IncrementVotes(ctx context.Context, id uuid.UUID, delta int) (*entity.FeedbackItem, error)
}
