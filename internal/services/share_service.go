package services

import (
	"errors"
	"fmt"

	"github.com/hyuga/course-scheduler-api/internal/constants"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/repository"
	"github.com/hyuga/course-scheduler-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrShareNotFound        = errors.New("shared calendar not found")
	ErrNoCoursesShared      = errors.New("at least one course name is required")
	ErrShareTokenGeneration = errors.New("failed to generate share token")
)

// ShareService creates share tokens and resolves shared calendars.
type ShareService struct {
	shareRepo  repository.ShareTokenRepository
	taskRepo   repository.TaskRepository
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
}

// NewShareService creates a new ShareService.
func NewShareService(
	shareRepo repository.ShareTokenRepository,
	taskRepo repository.TaskRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
) *ShareService {
	return &ShareService{
		shareRepo:  shareRepo,
		taskRepo:   taskRepo,
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// CreateShareToken issues a read-only capability token for the caller's tasks
// in the given courses. The token is immutable once created: no expiry, no
// revocation. Uniqueness is enforced at insert; on the negligible chance of a
// collision the token is regenerated.
func (s *ShareService) CreateShareToken(subjectID string, courseNames []string) (*models.ShareToken, error) {
	if len(courseNames) == 0 {
		return nil, ErrNoCoursesShared
	}

	for attempt := 0; attempt < constants.MaxShareTokenAttempts; attempt++ {
		token, err := utils.GenerateShareToken()
		if err != nil {
			return nil, ErrShareTokenGeneration
		}

		// Defense-in-depth uniqueness check; a 128-bit collision is
		// negligible but regenerating costs nothing.
		if _, err := s.shareRepo.FindByToken(token); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check share token: %w", err)
		}

		shareToken := &models.ShareToken{
			Token:          token,
			OwnerSubjectID: subjectID,
			Courses:        models.SerializeCourseNames(courseNames),
		}

		if err := s.shareRepo.Create(shareToken); err != nil {
			return nil, fmt.Errorf("failed to persist share token: %w", err)
		}

		return shareToken, nil
	}

	return nil, ErrShareTokenGeneration
}

// SharedCalendar is the bounded read-only view a token resolves to.
type SharedCalendar struct {
	OwnerName string
	Tasks     []models.Task
	Colors    map[string]string
}

// ResolveSharedCalendar resolves a token to the owner's tasks in the shared
// courses. Unknown tokens yield ErrShareNotFound, never an empty success.
// Course ownership is not revalidated beyond name matching.
func (s *ShareService) ResolveSharedCalendar(token string) (*SharedCalendar, error) {
	shareToken, err := s.shareRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, fmt.Errorf("failed to find share token: %w", err)
	}

	names := shareToken.CourseNames()

	tasks, err := s.taskRepo.ListByOwnerAndCourses(shareToken.OwnerSubjectID, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared tasks: %w", err)
	}

	courses, err := s.courseRepo.ListByOwnerAndNames(shareToken.OwnerSubjectID, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared courses: %w", err)
	}

	colors := make(map[string]string, len(courses))
	for _, course := range courses {
		colors[course.Name] = course.Color
	}

	ownerName := "User"
	if owner, err := s.userRepo.FindBySubjectID(shareToken.OwnerSubjectID); err == nil {
		ownerName = owner.DisplayName()
	}

	return &SharedCalendar{
		OwnerName: ownerName,
		Tasks:     tasks,
		Colors:    colors,
	}, nil
}
