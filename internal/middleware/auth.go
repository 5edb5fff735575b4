package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/auth"
	"github.com/hyuga/course-scheduler-api/internal/constants"
	apierrors "github.com/hyuga/course-scheduler-api/internal/errors"
)

// RequireAuth verifies the bearer credential and stores the verified
// identity in the gin context. It never creates the local user row.
func RequireAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired credential")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the verified identity from context
func GetIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*auth.Identity)
	if !ok {
		return nil, false
	}
	return identity, true
}
