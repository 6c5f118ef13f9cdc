package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/app/services"
	"github.com/okan/courseatlas/internal/middleware"
	"github.com/okan/courseatlas/internal/pkg/helpers"
)

// CourseController handles catalog browsing and search
type CourseController struct {
	courseService  services.CourseService
	sectionService services.SectionService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, sectionService services.SectionService) *CourseController {
	return &CourseController{
		courseService:  courseService,
		sectionService: sectionService,
	}
}

// SearchCourses searches the course catalog
// @Summary Search courses
// @Description Searches the catalog by department, SBC code and free text. All filters are optional and combine with AND.
// @Tags courses
// @Accept json
// @Produce json
// @Param department query string false "Department prefix, e.g. CSE"
// @Param sbc query string false "Curriculum (SBC) code, e.g. TECH"
// @Param search query string false "Free-text search over code, title and description"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := &dto.CourseFilterRequest{
		Department: ctx.Query("department"),
		SBC:        ctx.Query("sbc"),
		Search:     ctx.Query("search"),
		Page:       page,
		PageSize:   size,
	}

	result, err := c.courseService.SearchCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a single course with its full catalog entry
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").
			WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// GetCourseSections retrieves the section history of a course
// @Summary Get course section history
// @Description Retrieves all recorded sections of a course with overall and per-instructor grade distribution aggregates
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SectionHistoryResponse} "Sections retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/sections [get]
func (c *CourseController) GetCourseSections(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").
			WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	history, err := c.sectionService.GetCourseSections(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(history))
}

// ListDepartments lists the department prefixes in the catalog
// @Summary List departments
// @Description Retrieves the distinct department prefixes present in the catalog
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *CourseController) ListDepartments(ctx *gin.Context) {
	departments, err := c.courseService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// ListSBCs lists the curriculum codes
// @Summary List SBC codes
// @Description Retrieves all curriculum (SBC) codes with their descriptions
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SBC} "SBC codes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sbcs [get]
func (c *CourseController) ListSBCs(ctx *gin.Context) {
	sbcs, err := c.courseService.ListSBCs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sbcs))
}
