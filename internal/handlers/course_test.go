package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/auth"
	"github.com/hyuga/course-scheduler-api/internal/constants"
	"github.com/hyuga/course-scheduler-api/internal/database"
	"github.com/hyuga/course-scheduler-api/internal/dto"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/hyuga/course-scheduler-api/internal/repository"
	"github.com/hyuga/course-scheduler-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type courseTestEnv struct {
	db      *gorm.DB
	handler *CourseHandler
}

func setupCourseTestEnv(t *testing.T) courseTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Course{})
	require.NoError(t, err)

	database.SetDB(db)

	userService := services.NewUserService(repository.NewUserRepository(db), nil)
	courseService := services.NewCourseService(repository.NewCourseRepository(db), userService)
	handler := NewCourseHandler(courseService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return courseTestEnv{
		db:      db,
		handler: handler,
	}
}

func courseTestContext(method, url string, body []byte, subjectID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyIdentity, &auth.Identity{
		SubjectID: subjectID,
		Email:     subjectID + "@example.com",
	})

	return c, w
}

func TestCourseHandler_CreateCourse_LazyUserCreation(t *testing.T) {
	env := setupCourseTestEnv(t)

	payload := map[string]string{"name": "CS100", "color": "#ff0000"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := courseTestContext(http.MethodPost, "/courses", body, "uid-new")

	env.handler.CreateCourse(c)

	require.Equal(t, http.StatusCreated, w.Code)

	// The user row was created lazily on the first authenticated write.
	var user models.User
	require.NoError(t, env.db.Where("subject_id = ?", "uid-new").First(&user).Error)
	require.Equal(t, models.RoleStudent, user.Role)
}

func TestCourseHandler_CreateCourse_DuplicatePerOwner(t *testing.T) {
	env := setupCourseTestEnv(t)

	require.NoError(t, env.db.Create(&models.Course{
		Name: "CS100", Color: "#ff0000", OwnerSubjectID: "uid-a",
	}).Error)

	payload := map[string]string{"name": "CS100", "color": "#00ff00"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := courseTestContext(http.MethodPost, "/courses", body, "uid-a")

	env.handler.CreateCourse(c)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCourseHandler_CreateCourse_SameNameDifferentOwners(t *testing.T) {
	env := setupCourseTestEnv(t)

	require.NoError(t, env.db.Create(&models.Course{
		Name: "CS100", Color: "#ff0000", OwnerSubjectID: "uid-a",
	}).Error)

	// Course names are unique per owner, not globally.
	payload := map[string]string{"name": "CS100", "color": "#00ff00"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := courseTestContext(http.MethodPost, "/courses", body, "uid-b")

	env.handler.CreateCourse(c)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCourseHandler_ListCourses_OnlyOwned(t *testing.T) {
	env := setupCourseTestEnv(t)

	require.NoError(t, env.db.Create(&models.Course{
		Name: "CS100", Color: "#ff0000", OwnerSubjectID: "uid-a",
	}).Error)
	require.NoError(t, env.db.Create(&models.Course{
		Name: "CS200", Color: "#00ff00", OwnerSubjectID: "uid-b",
	}).Error)

	c, w := courseTestContext(http.MethodGet, "/courses", nil, "uid-a")

	env.handler.ListCourses(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.CourseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "CS100", response[0].Name)
}
