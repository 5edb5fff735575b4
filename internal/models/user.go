package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	SubjectID     string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"subject_id"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName     string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100)" json:"last_name"`
	School        string    `gorm:"type:varchar(255)" json:"school"`
	TimeFormat12h bool      `gorm:"default:true" json:"time_format"`
	Notifications bool      `gorm:"default:true" json:"notifications"`
	Role          UserRole  `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Courses     []Course     `gorm:"foreignKey:OwnerSubjectID;references:SubjectID" json:"-"`
	Tasks       []Task       `gorm:"foreignKey:OwnerSubjectID;references:SubjectID" json:"-"`
	ShareTokens []ShareToken `gorm:"foreignKey:OwnerSubjectID;references:SubjectID" json:"-"`
}

// DisplayName returns the name shown on shared calendars.
func (u *User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}
