package models

import "time"

type Course struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_courses_owner_name" json:"name"`
	Color          string    `gorm:"type:varchar(16);not null" json:"color"`
	OwnerSubjectID string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_courses_owner_name" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
