package models

import (
	"encoding/json"
	"time"
)

// ShareToken grants unauthenticated read-only access to the owner's tasks
// in the listed courses. Tokens never expire and cannot be revoked.
type ShareToken struct {
	Token          string    `gorm:"type:varchar(64);primarykey" json:"token"`
	OwnerSubjectID string    `gorm:"type:varchar(128);not null;index" json:"-"`
	Courses        string    `gorm:"type:text;not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// CourseNames deserializes the stored course-name list. Names are free text,
// so the list is stored as a JSON array rather than a delimited string.
func (s *ShareToken) CourseNames() []string {
	if s.Courses == "" {
		return nil
	}

	var names []string
	if err := json.Unmarshal([]byte(s.Courses), &names); err != nil {
		return nil
	}
	return names
}

// SerializeCourseNames encodes course names into the stored JSON form.
func SerializeCourseNames(names []string) string {
	encoded, err := json.Marshal(names)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}
