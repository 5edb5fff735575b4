package dto

import (
	"time"

	"github.com/hyuga/course-scheduler-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64          `json:"id"`
	SubjectID string          `json:"subject_id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	School    string          `json:"school"`
	Role      models.UserRole `json:"role"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
}

// SettingsDTO represents a user's preference settings
type SettingsDTO struct {
	TimeFormat12h bool            `json:"time_format"`
	Notifications bool            `json:"notifications"`
	Role          models.UserRole `json:"role"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		SubjectID: user.SubjectID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		School:    user.School,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToSettingsDTO converts a User model to SettingsDTO
func ToSettingsDTO(user models.User) SettingsDTO {
	return SettingsDTO{
		TimeFormat12h: user.TimeFormat12h,
		Notifications: user.Notifications,
		Role:          user.Role,
	}
}
