package implementation

import (
	"context"
	"database/sql"
	"errors"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/mapper"
	"micro-automation-hub/internal/model"
	"micro-automation-hub/internal/repository/contract"
	"micro-automation-hub/internal/repository/scope"
	"micro-automation-hub/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, item *entity.FeedbackItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) Upsert(ctx context.Context, item *entity.FeedbackItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Clauses(upsertOn("title", "votes", "state", "sort_order")).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeedbackItem, error) {
	var m model.FeedbackItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackItem, error) {
	var models []*model.FeedbackItem
	query := applySpecifications(scope.OrderBySortOrder(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeedbackRepositoryImpl) MaxSortOrder(ctx context.Context) (int, error) {
	var max sql.NullInt64
	if err := r.db.WithContext(ctx).Model(&model.FeedbackItem{}).Select("MAX(sort_order)").Scan(&max).Error; err != nil {
		return 0, err
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

func (r *FeedbackRepositoryImpl) IncrementVotes(ctx context.Context, id uuid.UUID, delta int) (*entity.FeedbackItem, error) {
	var m model.FeedbackItem
	res := r.db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.mapper.ToEntity(&m), nil
}
