package repository

import (
	"github.com/hyuga/course-scheduler-api/internal/database"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByOwner lists the owner's tasks
func (r *GormTaskRepository) ListByOwner(subjectID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.OwnedBy(subjectID)).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByIDForOwner finds a task by id if it belongs to the owner
func (r *GormTaskRepository) FindByIDForOwner(id uint64, subjectID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Scopes(database.OwnedBy(subjectID)).
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// DeleteForOwner deletes a task by id if it belongs to the owner
func (r *GormTaskRepository) DeleteForOwner(id uint64, subjectID string) error {
	result := r.db.Scopes(database.OwnedBy(subjectID)).
		Where("id = ?", id).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByOwnerAndCourses lists the owner's tasks whose course name is in the list
func (r *GormTaskRepository) ListByOwnerAndCourses(subjectID string, courses []string) ([]models.Task, error) {
	if len(courses) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := r.db.Scopes(database.OwnedBy(subjectID)).
		Where("course IN ?", courses).
		Order("due_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
