package repository

import (
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindBySubjectID finds a user by external subject id
	FindBySubjectID(subjectID string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// List retrieves users with pagination
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// DeleteCascade removes the user and all owned rows (tasks, courses,
	// share tokens) in a single transaction
	DeleteCascade(subjectID string) error

	// ResetCalendar deletes all tasks and courses owned by the user
	ResetCalendar(subjectID string) error
}

// CourseRepository defines the interface for course data access. Every method
// is scoped to an owner; there is no unscoped accessor.
type CourseRepository interface {
	// Create creates a new course
	Create(course *models.Course) error

	// ListByOwner lists the owner's courses
	ListByOwner(subjectID string) ([]models.Course, error)

	// FindByOwnerAndName finds the owner's course with the given name
	FindByOwnerAndName(subjectID, name string) (*models.Course, error)

	// ListByOwnerAndNames lists the owner's courses whose names are in the list
	ListByOwnerAndNames(subjectID string, names []string) ([]models.Course, error)
}

// TaskRepository defines the interface for task data access. Every method is
// scoped to an owner; there is no unscoped accessor.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByOwner lists the owner's tasks
	ListByOwner(subjectID string) ([]models.Task, error)

	// FindByIDForOwner finds a task by id if it belongs to the owner
	FindByIDForOwner(id uint64, subjectID string) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// DeleteForOwner deletes a task by id if it belongs to the owner;
	// gorm.ErrRecordNotFound if no owned row matched
	DeleteForOwner(id uint64, subjectID string) error

	// ListByOwnerAndCourses lists the owner's tasks whose course name is in
	// the list
	ListByOwnerAndCourses(subjectID string, courses []string) ([]models.Task, error)
}

// ShareTokenRepository defines the interface for share token data access
type ShareTokenRepository interface {
	// Create persists a new share token
	Create(token *models.ShareToken) error

	// FindByToken finds a share token by its token string
	FindByToken(token string) (*models.ShareToken, error)
}

// SettingRepository defines the interface for system setting data access
type SettingRepository interface {
	// Seed inserts default settings that do not exist yet
	Seed(defaults map[string]string) error

	// List retrieves all settings
	List() ([]models.SystemSetting, error)

	// FindByKey finds a setting by key
	FindByKey(key string) (*models.SystemSetting, error)

	// UpdateValue updates an existing setting's value;
	// gorm.ErrRecordNotFound if the key is absent
	UpdateValue(key, value string) error
}
