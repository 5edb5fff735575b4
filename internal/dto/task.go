package dto

import (
	"time"

	"github.com/hyuga/course-scheduler-api/internal/constants"
	"github.com/hyuga/course-scheduler-api/internal/models"
)

// TaskDTO represents a task in API responses. Deadlines are rendered in the
// canonical naive form without a zone suffix.
type TaskDTO struct {
	ID        uint64    `json:"id"`
	Text      string    `json:"text"`
	Course    string    `json:"course"`
	Tag       string    `json:"tag"`
	Deadline  *string   `json:"deadline"`
	DueDate   string    `json:"due_date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormatDeadline renders a deadline in the canonical naive form, or nil.
func FormatDeadline(deadline *time.Time) *string {
	if deadline == nil {
		return nil
	}
	s := deadline.Format(constants.DeadlineLayout)
	return &s
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Text:      task.Text,
		Course:    task.Course,
		Tag:       task.Tag,
		Deadline:  FormatDeadline(task.Deadline),
		DueDate:   task.DueDate,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
