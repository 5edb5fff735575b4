package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hyuga/course-scheduler-api/internal/constants"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/admin/users"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "defaults",
			query:      "",
			wantPage:   1,
			wantLimit:  constants.DefaultPageSize,
			wantOffset: 0,
		},
		{
			name:       "explicit page and limit",
			query:      "?page=3&limit=10",
			wantPage:   3,
			wantLimit:  10,
			wantOffset: 20,
		},
		{
			name:       "limit above maximum is clamped",
			query:      "?limit=100000",
			wantPage:   1,
			wantLimit:  constants.MaxPageSize,
			wantOffset: 0,
		},
		{
			name:       "non-positive limit falls back to default",
			query:      "?limit=0",
			wantPage:   1,
			wantLimit:  constants.DefaultPageSize,
			wantOffset: 0,
		},
		{
			name:       "non-positive page falls back to first",
			query:      "?page=-2&limit=10",
			wantPage:   1,
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "malformed values fall back",
			query:      "?page=abc&limit=xyz",
			wantPage:   1,
			wantLimit:  constants.DefaultPageSize,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetPaginationParams(paginationContext(t, tt.query))
			require.Equal(t, tt.wantPage, params.Page)
			require.Equal(t, tt.wantLimit, params.Limit)
			require.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}
