package models

import (
	"time"
)

type Task struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	Text           string     `gorm:"type:text;not null" json:"text"`
	Course         string     `gorm:"type:varchar(255)" json:"course"`
	Tag            string     `gorm:"type:varchar(100)" json:"tag"`
	Deadline       *time.Time `json:"deadline"`
	DueDate        string     `gorm:"type:varchar(32)" json:"due_date"`
	Completed      bool       `gorm:"default:false" json:"completed"`
	OwnerSubjectID string     `gorm:"type:varchar(128);not null;index" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
