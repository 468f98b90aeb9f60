package implementation

import (
	"micro-automation-hub/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// upsertOn inserts or, when the natural key already exists, refreshes every listed column.
func upsertOn(key string, columns ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}
}
