package unitofwork

import (
	"context"
	"fmt"

	"micro-automation-hub/internal/repository/contract"
	"micro-automation-hub/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) AutomationRepository() contract.AutomationRepository {
	return implementation.NewAutomationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InsightRepository() contract.InsightRepository {
	return implementation.NewInsightRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RoadmapRepository() contract.RoadmapRepository {
	return implementation.NewRoadmapRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeedbackRepository() contract.FeedbackRepository {
	return implementation.NewFeedbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FailureAtlasRepository() contract.FailureAtlasRepository {
	return implementation.NewFailureAtlasRepository(u.getDB())
}
