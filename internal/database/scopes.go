package database

import (
	"gorm.io/gorm"

	"github.com/hyuga/course-scheduler-api/internal/utils"
)

// OwnedBy restricts a query to rows owned by the given subject id. Every
// task/course read and mutation must pass through this scope so that
// cross-tenant access is impossible regardless of handler-level mistakes.
func OwnedBy(subjectID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_subject_id = ?", subjectID)
	}
}

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}
