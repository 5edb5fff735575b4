package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/auth"
	"github.com/hyuga/course-scheduler-api/internal/database"
	"github.com/hyuga/course-scheduler-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeVerifier accepts a single known token.
type fakeVerifier struct {
	token    string
	identity *auth.Identity
}

func (f *fakeVerifier) Verify(_ context.Context, rawToken string) (*auth.Identity, error) {
	if rawToken != f.token {
		return nil, auth.ErrUnauthenticated
	}
	return f.identity, nil
}

func setupAuthRouter(t *testing.T, verifier auth.TokenVerifier) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(verifier), func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"subject_id": identity.SubjectID})
	})
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := setupAuthRouter(t, &fakeVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r := setupAuthRouter(t, &fakeVerifier{token: "good-token"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r := setupAuthRouter(t, &fakeVerifier{
		token:    "good-token",
		identity: &auth.Identity{SubjectID: "uid-1", Email: "a@example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "uid-1")
}

func setupAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeVerifier) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	verifier := &fakeVerifier{token: "token"}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", RequireAuth(verifier), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, db, verifier
}

func adminRequest(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_AdminRole(t *testing.T) {
	r, db, verifier := setupAdminRouter(t)

	require.NoError(t, db.Create(&models.User{
		SubjectID: "uid-admin", Email: "admin@example.com", Role: models.RoleAdmin,
	}).Error)
	verifier.identity = &auth.Identity{SubjectID: "uid-admin", Email: "admin@example.com"}

	w := adminRequest(r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_StudentRole(t *testing.T) {
	r, db, verifier := setupAdminRouter(t)

	require.NoError(t, db.Create(&models.User{
		SubjectID: "uid-student", Email: "student@example.com", Role: models.RoleStudent,
	}).Error)
	verifier.identity = &auth.Identity{SubjectID: "uid-student", Email: "student@example.com"}

	w := adminRequest(r)

	require.Equal(t, http.StatusForbidden, w.Code)
}

// The check reads the persisted role column, so a demotion takes effect on
// the very next request without re-issuing the credential.
func TestRequireAdmin_DemotionTakesEffect(t *testing.T) {
	r, db, verifier := setupAdminRouter(t)

	user := &models.User{
		SubjectID: "uid-admin", Email: "admin@example.com", Role: models.RoleAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	verifier.identity = &auth.Identity{SubjectID: "uid-admin", Email: "admin@example.com"}

	require.Equal(t, http.StatusOK, adminRequest(r).Code)

	require.NoError(t, db.Model(user).Update("role", models.RoleStudent).Error)

	require.Equal(t, http.StatusForbidden, adminRequest(r).Code)
}

func TestRequireAdmin_NoLocalUser(t *testing.T) {
	r, _, verifier := setupAdminRouter(t)

	verifier.identity = &auth.Identity{SubjectID: "uid-ghost", Email: "ghost@example.com"}

	w := adminRequest(r)

	require.Equal(t, http.StatusForbidden, w.Code)
}
