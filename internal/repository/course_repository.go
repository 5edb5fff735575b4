package repository

import (
	"github.com/hyuga/course-scheduler-api/internal/database"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"gorm.io/gorm"
)

// GormCourseRepository is a GORM implementation of CourseRepository
type GormCourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &GormCourseRepository{db: db}
}

// Create creates a new course
func (r *GormCourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// ListByOwner lists the owner's courses
func (r *GormCourseRepository) ListByOwner(subjectID string) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.Scopes(database.OwnedBy(subjectID)).
		Order("name ASC").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByOwnerAndName finds the owner's course with the given name
func (r *GormCourseRepository) FindByOwnerAndName(subjectID, name string) (*models.Course, error) {
	var course models.Course
	if err := r.db.Scopes(database.OwnedBy(subjectID)).
		Where("name = ?", name).
		First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListByOwnerAndNames lists the owner's courses whose names are in the list
func (r *GormCourseRepository) ListByOwnerAndNames(subjectID string, names []string) ([]models.Course, error) {
	if len(names) == 0 {
		return []models.Course{}, nil
	}

	var courses []models.Course
	if err := r.db.Scopes(database.OwnedBy(subjectID)).
		Where("name IN ?", names).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
