package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyuga/course-scheduler-api/internal/auth"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/repository"
	"github.com/hyuga/course-scheduler-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrExternalDelete  = errors.New("external account deletion failed")
)

// AdminService handles admin-gated user management and system settings.
type AdminService struct {
	userRepo      repository.UserRepository
	settingRepo   repository.SettingRepository
	identityAdmin auth.IdentityAdmin
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	userRepo repository.UserRepository,
	settingRepo repository.SettingRepository,
	identityAdmin auth.IdentityAdmin,
) *AdminService {
	return &AdminService{
		userRepo:      userRepo,
		settingRepo:   settingRepo,
		identityAdmin: identityAdmin,
	}
}

// ListUsers returns users with pagination.
func (s *AdminService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// SetUserActive toggles a user's active flag.
func (s *AdminService) SetUserActive(subjectID string, active bool) (*models.User, error) {
	user, err := s.findUser(subjectID)
	if err != nil {
		return nil, err
	}

	user.Active = active
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// PromoteToAdmin sets the target user's role to admin. A missing target
// yields ErrUserNotFound with no mutation.
func (s *AdminService) PromoteToAdmin(subjectID string) (*models.User, error) {
	user, err := s.findUser(subjectID)
	if err != nil {
		return nil, err
	}

	user.Role = models.RoleAdmin
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}

	return user, nil
}

// DeleteUserAccount removes the external identity first and, only on
// success, cascades over share tokens, tasks, courses and the user row.
// A failed external delete leaves local state untouched.
func (s *AdminService) DeleteUserAccount(ctx context.Context, subjectID string) error {
	if _, err := s.findUser(subjectID); err != nil {
		return err
	}

	if err := s.identityAdmin.DeleteAccount(ctx, subjectID); err != nil {
		return fmt.Errorf("%w: %v", ErrExternalDelete, err)
	}

	if err := s.userRepo.DeleteCascade(subjectID); err != nil {
		return fmt.Errorf("failed to cascade delete user: %w", err)
	}

	return nil
}

// ResetUserCalendar deletes all tasks and courses of the target user.
func (s *AdminService) ResetUserCalendar(subjectID string) error {
	if _, err := s.findUser(subjectID); err != nil {
		return err
	}

	if err := s.userRepo.ResetCalendar(subjectID); err != nil {
		return fmt.Errorf("failed to reset calendar: %w", err)
	}

	return nil
}

// ListSettings returns all system settings.
func (s *AdminService) ListSettings() ([]models.SystemSetting, error) {
	settings, err := s.settingRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// GetSetting returns a single system setting.
func (s *AdminService) GetSetting(key string) (*models.SystemSetting, error) {
	setting, err := s.settingRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}
	return setting, nil
}

// UpdateSetting updates an existing setting's value. A missing key yields
// ErrSettingNotFound.
func (s *AdminService) UpdateSetting(key, value string) (*models.SystemSetting, error) {
	if err := s.settingRepo.UpdateValue(key, value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}

	return s.GetSetting(key)
}

func (s *AdminService) findUser(subjectID string) (*models.User, error) {
	user, err := s.userRepo.FindBySubjectID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
