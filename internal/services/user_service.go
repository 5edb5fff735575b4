package services

import (
	"errors"
	"fmt"

	"github.com/hyuga/course-scheduler-api/internal/auth"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrProfileExists = errors.New("profile already exists")
)

// UserService handles local user profiles and preferences.
type UserService struct {
	userRepo     repository.UserRepository
	isAdminEmail func(string) bool
}

// NewUserService creates a new UserService. isAdminEmail decides whether a
// newly created profile receives the admin role.
func NewUserService(userRepo repository.UserRepository, isAdminEmail func(string) bool) *UserService {
	return &UserService{
		userRepo:     userRepo,
		isAdminEmail: isAdminEmail,
	}
}

// CreateProfileInput represents the profile fields supplied by the caller.
// Subject id and email always come from the verified identity, never the body.
type CreateProfileInput struct {
	FirstName string
	LastName  string
	School    string
}

// CreateProfile creates the local profile for a verified identity. The role
// is derived from the admin allow-list at creation time.
func (s *UserService) CreateProfile(identity *auth.Identity, input CreateProfileInput) (*models.User, error) {
	if _, err := s.userRepo.FindBySubjectID(identity.SubjectID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}

	user := s.newUser(identity)
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.School = input.School

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return user, nil
}

// EnsureUser returns the local user for a verified identity, creating a
// minimal row on first authenticated write if absent.
func (s *UserService) EnsureUser(identity *auth.Identity) (*models.User, error) {
	user, err := s.userRepo.FindBySubjectID(identity.SubjectID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = s.newUser(identity)
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetSettings returns the caller's preference settings.
func (s *UserService) GetSettings(subjectID string) (*models.User, error) {
	user, err := s.userRepo.FindBySubjectID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateSettingsInput represents optional preference updates.
type UpdateSettingsInput struct {
	TimeFormat12h *bool
	Notifications *bool
}

// UpdateSettings updates the caller's preference settings.
func (s *UserService) UpdateSettings(subjectID string, input UpdateSettingsInput) (*models.User, error) {
	user, err := s.userRepo.FindBySubjectID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.TimeFormat12h != nil {
		user.TimeFormat12h = *input.TimeFormat12h
	}
	if input.Notifications != nil {
		user.Notifications = *input.Notifications
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return user, nil
}

func (s *UserService) newUser(identity *auth.Identity) *models.User {
	role := models.RoleStudent
	if s.isAdminEmail != nil && s.isAdminEmail(identity.Email) {
		role = models.RoleAdmin
	}

	return &models.User{
		SubjectID:     identity.SubjectID,
		Email:         identity.Email,
		Role:          role,
		TimeFormat12h: true,
		Notifications: true,
		Active:        true,
	}
}
