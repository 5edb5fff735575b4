package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/dto"
	apierrors "github.com/hyuga/course-scheduler-api/internal/errors"
	"github.com/hyuga/course-scheduler-api/internal/middleware"
	"github.com/hyuga/course-scheduler-api/internal/services"
)

// CourseHandler coordinates course handlers.
type CourseHandler struct {
	courseService *services.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

// ListCourses returns all courses owned by the caller.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	courses, err := h.courseService.ListCourses(identity.SubjectID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch courses")
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseDTOs(courses))
}

// CreateCourse creates a course owned by the caller.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateCourseRequest struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color" binding:"required"`
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	course, err := h.courseService.CreateCourse(identity, services.CreateCourseInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNameEmpty):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrCourseExists):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourseDTO(*course))
}
