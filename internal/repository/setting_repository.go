package repository

import (
	"github.com/hyuga/course-scheduler-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository is a GORM implementation of SettingRepository
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &GormSettingRepository{db: db}
}

// Seed inserts default settings that do not exist yet
func (r *GormSettingRepository) Seed(defaults map[string]string) error {
	if len(defaults) == 0 {
		return nil
	}

	settings := make([]models.SystemSetting, 0, len(defaults))
	for key, value := range defaults {
		settings = append(settings, models.SystemSetting{Key: key, Value: value})
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&settings).Error
}

// List retrieves all settings
func (r *GormSettingRepository) List() ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	if err := r.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// FindByKey finds a setting by key
func (r *GormSettingRepository) FindByKey(key string) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// UpdateValue updates an existing setting's value
func (r *GormSettingRepository) UpdateValue(key, value string) error {
	result := r.db.Model(&models.SystemSetting{}).
		Where("key = ?", key).
		Update("value", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
