package specification

import "gorm.io/gorm"

// ByTitle matches a title exactly. Titles are stored trimmed.
type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

// ByPathPrefix selects failure modes under a taxonomy branch, e.g. "llm" matches "llm/latency".
type ByPathPrefix struct {
	Prefix string
}

func (s ByPathPrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("path = ? OR path LIKE ?", s.Prefix, s.Prefix+"/%")
}
