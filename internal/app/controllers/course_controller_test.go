package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
)

type fakeCourseService struct {
	lastFilter *dto.CourseFilterRequest
	course     *dto.CourseResponse
}

func (f *fakeCourseService) SearchCourses(ctx context.Context, filter *dto.CourseFilterRequest) (*dto.CourseListResponse, error) {
	f.lastFilter = filter
	return &dto.CourseListResponse{
		Courses:    []dto.CourseResponse{{ID: 1, Code: "CSE320", Title: "System Fundamentals II"}},
		Pagination: dto.PaginationInfo{CurrentPage: filter.Page, PageSize: filter.PageSize, TotalItems: 1, TotalPages: 1},
	}, nil
}

func (f *fakeCourseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	if f.course == nil || f.course.ID != id {
		return nil, apperrors.ErrCourseNotFound
	}
	return f.course, nil
}

func (f *fakeCourseService) ListDepartments(ctx context.Context) ([]string, error) {
	return []string{"AMS", "CSE"}, nil
}

func (f *fakeCourseService) ListSBCs(ctx context.Context) ([]models.SBC, error) {
	return []models.SBC{{Code: "TECH", Name: "Technology"}}, nil
}

type fakeSectionService struct{}

func (f *fakeSectionService) GetCourseSections(ctx context.Context, courseID int64) (*dto.SectionHistoryResponse, error) {
	return &dto.SectionHistoryResponse{CourseID: courseID, Sections: []models.Section{}}, nil
}

func setupCourseRouter(courseService *fakeCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewCourseController(courseService, &fakeSectionService{})

	router := gin.New()
	router.GET("/courses", controller.SearchCourses)
	router.GET("/courses/:id", controller.GetCourseByID)
	router.GET("/courses/:id/sections", controller.GetCourseSections)
	router.GET("/departments", controller.ListDepartments)
	router.GET("/sbcs", controller.ListSBCs)
	return router
}

func TestCourseController_SearchCourses(t *testing.T) {
	t.Parallel()

	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/courses?department=cse&sbc=TECH&search=systems&page=2&size=10", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.lastFilter)
	assert.Equal(t, "cse", svc.lastFilter.Department)
	assert.Equal(t, "TECH", svc.lastFilter.SBC)
	assert.Equal(t, "systems", svc.lastFilter.Search)
	assert.Equal(t, 2, svc.lastFilter.Page)
	assert.Equal(t, 10, svc.lastFilter.PageSize)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCourseController_GetCourseByID(t *testing.T) {
	t.Parallel()

	svc := &fakeCourseService{course: &dto.CourseResponse{ID: 1, Code: "CSE320"}}
	router := setupCourseRouter(svc)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/courses/1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/courses/999", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/courses/abc", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCourseController_ListDepartments(t *testing.T) {
	t.Parallel()

	router := setupCourseRouter(&fakeCourseService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/departments", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"AMS", "CSE"}, resp.Data)
}

func TestCourseController_GetCourseSections(t *testing.T) {
	t.Parallel()

	router := setupCourseRouter(&fakeCourseService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/courses/5/sections", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.SectionHistoryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Data.CourseID)
}
