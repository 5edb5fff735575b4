package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/constants"
)

// PaginationParams are the normalized page/limit/offset values for a listing.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse echoes the paging values alongside the total row count.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams reads page and limit query values and clamps them to
// the configured bounds. Malformed or out-of-range values are clamped rather
// than rejected.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < constants.MinPageSize {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
