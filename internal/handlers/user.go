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

// UserHandler coordinates profile and preference handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateProfile creates the local profile for the verified identity.
func (h *UserHandler) CreateProfile(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProfileRequest struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		School    string `json:"school"`
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateProfile(identity, services.CreateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		School:    req.School,
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			apierrors.Conflict(c, err.Error())
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// GetSettings returns the caller's preference settings.
func (h *UserHandler) GetSettings(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.userService.GetSettings(identity.SubjectID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(*user))
}

// UpdateSettings updates the caller's preference settings.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateSettingsRequest struct {
		TimeFormat12h *bool `json:"time_format"`
		Notifications *bool `json:"notifications"`
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateSettings(identity.SubjectID, services.UpdateSettingsInput{
		TimeFormat12h: req.TimeFormat12h,
		Notifications: req.Notifications,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(*user))
}
