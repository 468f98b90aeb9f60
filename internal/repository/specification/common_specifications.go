package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// Specification narrows or orders a query. Repositories apply them in the order given.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// OrderBy appends an ORDER BY term. Field must be a trusted column name.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
