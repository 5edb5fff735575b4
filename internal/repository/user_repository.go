package repository

import (
	"github.com/hyuga/course-scheduler-api/internal/database"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindBySubjectID finds a user by external subject id
func (r *GormUserRepository) FindBySubjectID(subjectID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("subject_id = ?", subjectID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// List retrieves users with pagination
func (r *GormUserRepository) List(params utils.PaginationParams) ([]models.User, int64, error) {
	var users []models.User

	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Scopes(database.Paginate(params)).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// DeleteCascade removes the user and all owned rows in a single transaction
func (r *GormUserRepository) DeleteCascade(subjectID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_subject_id = ?", subjectID).Delete(&models.ShareToken{}).Error; err != nil {
			return err
		}

		if err := tx.Where("owner_subject_id = ?", subjectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("owner_subject_id = ?", subjectID).Delete(&models.Course{}).Error; err != nil {
			return err
		}

		return tx.Where("subject_id = ?", subjectID).Delete(&models.User{}).Error
	})
}

// ResetCalendar deletes all tasks and courses owned by the user
func (r *GormUserRepository) ResetCalendar(subjectID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_subject_id = ?", subjectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Where("owner_subject_id = ?", subjectID).Delete(&models.Course{}).Error
	})
}
