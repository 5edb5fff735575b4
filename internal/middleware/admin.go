package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/database"
	apierrors "github.com/hyuga/course-scheduler-api/internal/errors"
	"github.com/hyuga/course-scheduler-api/internal/models"
)

// RequireAdmin checks the persisted role column of the local user row
// matching the verified identity. The role stored locally is the single
// source of truth: demotions take effect on the next request without
// waiting for the identity provider to re-issue claims. The check is
// read-only and never creates the user row; a missing row is Forbidden.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := GetIdentity(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().
			Where("subject_id = ?", identity.SubjectID).
			First(&user).Error; err != nil {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			apierrors.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
