package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyuga/course-scheduler-api/internal/auth"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCourseNameEmpty = errors.New("course name cannot be empty")
	ErrCourseExists    = errors.New("course with this name already exists")
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo  repository.CourseRepository
	userService *UserService
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo repository.CourseRepository, userService *UserService) *CourseService {
	return &CourseService{
		courseRepo:  courseRepo,
		userService: userService,
	}
}

// ListCourses returns all courses owned by the caller.
func (s *CourseService) ListCourses(subjectID string) ([]models.Course, error) {
	courses, err := s.courseRepo.ListByOwner(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// CreateCourseInput represents input for creating a course.
type CreateCourseInput struct {
	Name  string
	Color string
}

// CreateCourse creates a course owned by the caller. The caller's local user
// row is created lazily on this first authenticated write if absent. Course
// names are unique per owner, not globally.
func (s *CourseService) CreateCourse(identity *auth.Identity, input CreateCourseInput) (*models.Course, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCourseNameEmpty
	}

	if _, err := s.userService.EnsureUser(identity); err != nil {
		return nil, err
	}

	if _, err := s.courseRepo.FindByOwnerAndName(identity.SubjectID, name); err == nil {
		return nil, ErrCourseExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check course name: %w", err)
	}

	course := &models.Course{
		Name:           name,
		Color:          input.Color,
		OwnerSubjectID: identity.SubjectID,
	}

	if err := s.courseRepo.Create(course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}
