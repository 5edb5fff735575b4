package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/dto"
	apierrors "github.com/hyuga/course-scheduler-api/internal/errors"
	"github.com/hyuga/course-scheduler-api/internal/middleware"
	"github.com/hyuga/course-scheduler-api/internal/services"
)

// TaskHandler coordinates task CRUD handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks owned by the caller.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListTasks(identity.SubjectID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task owned by the caller.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Text      string `json:"text" binding:"required"`
		Course    string `json:"course"`
		Tag       string `json:"tag"`
		Deadline  string `json:"deadline"`
		DueDate   string `json:"due_date"`
		Completed bool   `json:"completed"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(identity.SubjectID, services.CreateTaskInput{
		Text:      req.Text,
		Course:    req.Course,
		Tag:       req.Tag,
		Deadline:  req.Deadline,
		DueDate:   req.DueDate,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskTextEmpty):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidDeadline),
			errors.Is(err, services.ErrTaskCreation):
			apierrors.TaskCreationFailed(c)
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask updates a task owned by the caller.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type UpdateTaskRequest struct {
		Text      *string `json:"text"`
		Course    *string `json:"course"`
		Tag       *string `json:"tag"`
		Deadline  *string `json:"deadline"`
		DueDate   *string `json:"due_date"`
		Completed *bool   `json:"completed"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(identity.SubjectID, taskID, services.UpdateTaskInput{
		Text:      req.Text,
		Course:    req.Course,
		Tag:       req.Tag,
		Deadline:  req.Deadline,
		DueDate:   req.DueDate,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrTaskTextEmpty),
			errors.Is(err, services.ErrInvalidDeadline):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task owned by the caller.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(identity.SubjectID, taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
