package repository

import (
	"github.com/hyuga/course-scheduler-api/internal/models"
	"gorm.io/gorm"
)

// GormShareTokenRepository is a GORM implementation of ShareTokenRepository
type GormShareTokenRepository struct {
	db *gorm.DB
}

// NewShareTokenRepository creates a new ShareTokenRepository
func NewShareTokenRepository(db *gorm.DB) ShareTokenRepository {
	return &GormShareTokenRepository{db: db}
}

// Create persists a new share token
func (r *GormShareTokenRepository) Create(token *models.ShareToken) error {
	return r.db.Create(token).Error
}

// FindByToken finds a share token by its token string
func (r *GormShareTokenRepository) FindByToken(token string) (*models.ShareToken, error) {
	var shareToken models.ShareToken
	if err := r.db.Where("token = ?", token).First(&shareToken).Error; err != nil {
		return nil, err
	}
	return &shareToken, nil
}
