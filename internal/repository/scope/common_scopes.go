package scope

import "gorm.io/gorm"

// OrderBySortOrder is the primary listing order for seeded catalogue tables.
// Callers append their own tiebreaker.
func OrderBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func OrderByOccurredDesc(db *gorm.DB) *gorm.DB {
	return db.Order("occurred_at DESC")
}
