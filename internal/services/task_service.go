package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskTextEmpty   = errors.New("task text cannot be empty")
	ErrInvalidDeadline = errors.New("deadline could not be parsed")
	ErrTaskCreation    = errors.New("failed to create task")
)

// deadlineLayouts are the naive timestamp forms accepted after stripping a
// trailing UTC designator.
var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Text      string
	Course    string
	Tag       string
	Deadline  string
	DueDate   string
	Completed bool
}

// UpdateTaskInput represents input for updating a task
type UpdateTaskInput struct {
	Text      *string
	Course    *string
	Tag       *string
	Deadline  *string
	DueDate   *string
	Completed *bool
}

// ParseDeadline normalizes a free-text deadline to a canonical timestamp.
// A trailing "Z" is stripped and the remainder parsed as a naive local
// timestamp, matching how existing clients submit and read deadlines.
// Empty input means no deadline.
func ParseDeadline(input string) (*time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}

	s = strings.TrimSuffix(s, "Z")

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}

	return nil, ErrInvalidDeadline
}

// ListTasks returns all tasks owned by the caller
func (s *TaskService) ListTasks(subjectID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new task owned by the caller
func (s *TaskService) CreateTask(subjectID string, input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTaskTextEmpty
	}

	deadline, err := ParseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Text:           input.Text,
		Course:         input.Course,
		Tag:            input.Tag,
		Deadline:       deadline,
		DueDate:        input.DueDate,
		Completed:      input.Completed,
		OwnerSubjectID: subjectID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaskCreation, err)
	}

	return task, nil
}

// UpdateTask updates a task owned by the caller
func (s *TaskService) UpdateTask(subjectID string, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDForOwner(taskID, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Text != nil {
		if strings.TrimSpace(*input.Text) == "" {
			return nil, ErrTaskTextEmpty
		}
		task.Text = *input.Text
	}
	if input.Course != nil {
		task.Course = *input.Course
	}
	if input.Tag != nil {
		task.Tag = *input.Tag
	}
	if input.Deadline != nil {
		deadline, err := ParseDeadline(*input.Deadline)
		if err != nil {
			return nil, err
		}
		task.Deadline = deadline
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task owned by the caller
func (s *TaskService) DeleteTask(subjectID string, taskID uint64) error {
	if err := s.taskRepo.DeleteForOwner(taskID, subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
