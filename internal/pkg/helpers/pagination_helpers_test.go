package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 20, wantOffset: 0, wantLimit: 20},
		{name: "third page", page: 3, size: 10, wantOffset: 20, wantLimit: 10},
		{name: "zero page falls back to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "zero size falls back to default", page: 2, size: 0, wantOffset: 20, wantLimit: DefaultPageSize},
		{name: "oversized page size is capped", page: 1, size: MaxPageSize + 1, wantOffset: 0, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totalItems int64
		page       int
		size       int
		wantPages  int
		wantPage   int
	}{
		{name: "exact fit", totalItems: 40, page: 1, size: 20, wantPages: 2, wantPage: 1},
		{name: "partial last page", totalItems: 41, page: 3, size: 20, wantPages: 3, wantPage: 3},
		{name: "empty result still has one page", totalItems: 0, page: 1, size: 20, wantPages: 1, wantPage: 1},
		{name: "page beyond range is clamped", totalItems: 10, page: 5, size: 20, wantPages: 1, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := NewPaginationInfo(tt.totalItems, tt.page, tt.size)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.wantPage, info.CurrentPage)
			assert.Equal(t, tt.totalItems, info.TotalItems)
		})
	}
}

func TestParsePaginationParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{name: "defaults", query: "", wantPage: 1, wantSize: DefaultPageSize},
		{name: "explicit values", query: "page=3&size=50", wantPage: 3, wantSize: 50},
		{name: "garbage falls back", query: "page=abc&size=-1", wantPage: 1, wantSize: DefaultPageSize},
		{name: "oversized size falls back", query: "page=1&size=1000", wantPage: 1, wantSize: DefaultPageSize},
	}

	gin.SetMode(gin.TestMode)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/courses?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}
