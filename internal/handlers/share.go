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

// ShareHandler coordinates share token creation and public resolution.
type ShareHandler struct {
	shareService *services.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shareService *services.ShareService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// ShareSchedule issues a read-only share token for the caller's courses.
func (h *ShareHandler) ShareSchedule(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ShareScheduleRequest struct {
		Courses []string `json:"courses" binding:"required,min=1,dive,required"`
	}

	var req ShareScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "courses must be a non-empty list of course names")
		return
	}

	token, err := h.shareService.CreateShareToken(identity.SubjectID, req.Courses)
	if err != nil {
		if errors.Is(err, services.ErrNoCoursesShared) {
			apierrors.BadRequest(c, err.Error())
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token.Token})
}

// GetSharedCalendar resolves a share token into the public read-only view.
// The token is the sole access control; no authentication is required.
func (h *ShareHandler) GetSharedCalendar(c *gin.Context) {
	token := c.Param("token")

	calendar, err := h.shareService.ResolveSharedCalendar(token)
	if err != nil {
		if errors.Is(err, services.ErrShareNotFound) {
			apierrors.NotFound(c, "Shared calendar not found")
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSharedCalendarDTO(calendar))
}
