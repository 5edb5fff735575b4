package dto

import (
	"github.com/hyuga/course-scheduler-api/internal/constants"
	"github.com/hyuga/course-scheduler-api/internal/services"
)

// SharedEventDTO is one calendar entry of a shared schedule
type SharedEventDTO struct {
	ID        uint64  `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Course    string  `json:"course"`
	Tag       string  `json:"tag"`
	Deadline  *string `json:"deadline"`
	Completed bool    `json:"completed"`
	Color     string  `json:"color"`
}

// SharedCalendarDTO is the public read-only view a share token resolves to
type SharedCalendarDTO struct {
	OwnerName string           `json:"ownerName"`
	Events    []SharedEventDTO `json:"events"`
}

// ToSharedCalendarDTO converts a resolved shared calendar
func ToSharedCalendarDTO(calendar *services.SharedCalendar) SharedCalendarDTO {
	events := make([]SharedEventDTO, len(calendar.Tasks))
	for i, task := range calendar.Tasks {
		color, ok := calendar.Colors[task.Course]
		if !ok {
			color = constants.DefaultCourseColor
		}

		events[i] = SharedEventDTO{
			ID:        task.ID,
			Title:     task.Text,
			Date:      task.DueDate,
			Course:    task.Course,
			Tag:       task.Tag,
			Deadline:  FormatDeadline(task.Deadline),
			Completed: task.Completed,
			Color:     color,
		}
	}

	return SharedCalendarDTO{
		OwnerName: calendar.OwnerName,
		Events:    events,
	}
}
