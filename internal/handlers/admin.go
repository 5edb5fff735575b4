package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/dto"
	apierrors "github.com/hyuga/course-scheduler-api/internal/errors"
	"github.com/hyuga/course-scheduler-api/internal/services"
	"github.com/hyuga/course-scheduler-api/internal/utils"
)

// AdminHandler coordinates admin-gated user management and settings handlers.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListUsers returns all users with pagination.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.ListUsers(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": dto.ToUserDTOs(users),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// SetUserActive toggles a user's active flag.
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	type SetActiveRequest struct {
		Active *bool `json:"active" binding:"required"`
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.adminService.SetUserActive(c.Param("uid"), *req.Active)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// PromoteToAdmin sets the target user's role to admin.
func (h *AdminHandler) PromoteToAdmin(c *gin.Context) {
	user, err := h.adminService.PromoteToAdmin(c.Param("uid"))
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser deletes the external identity and cascades over local rows.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminService.DeleteUserAccount(c.Request.Context(), c.Param("uid")); err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ResetUserCalendar deletes all tasks and courses of the target user.
func (h *AdminHandler) ResetUserCalendar(c *gin.Context) {
	if err := h.adminService.ResetUserCalendar(c.Param("uid")); err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calendar reset"})
}

// ListSettings returns all system settings.
func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.adminService.ListSettings()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// GetSetting returns a single system setting.
func (h *AdminHandler) GetSetting(c *gin.Context) {
	setting, err := h.adminService.GetSetting(c.Param("key"))
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

// UpdateSetting updates an existing system setting.
func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	type UpdateSettingRequest struct {
		Value *string `json:"value" binding:"required"`
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	setting, err := h.adminService.UpdateSetting(c.Param("key"), *req.Value)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrSettingNotFound):
		apierrors.NotFound(c, "Setting not found")
	case errors.Is(err, services.ErrExternalDelete):
		apierrors.ExternalDeleteFailed(c)
	default:
		apierrors.InternalError(c, "")
	}
}
