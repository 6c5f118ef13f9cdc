package services

import (
	"context"
	"fmt"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/app/repositories"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
	"github.com/okan/courseatlas/internal/pkg/helpers"
)

// CourseService handles catalog search and lookup operations
type CourseService interface {
	SearchCourses(ctx context.Context, filter *dto.CourseFilterRequest) (*dto.CourseListResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	ListDepartments(ctx context.Context) ([]string, error)
	ListSBCs(ctx context.Context) ([]models.SBC, error)
}

type courseService struct {
	courseRepo *repositories.CourseRepository
	sbcRepo    *repositories.SBCRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, sbcRepo *repositories.SBCRepository) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		sbcRepo:    sbcRepo,
	}
}

// SearchCourses runs a filtered catalog search. Unknown departments or SBC
// codes simply match nothing; the response is an empty page, not an error.
func (s *courseService) SearchCourses(ctx context.Context, filter *dto.CourseFilterRequest) (*dto.CourseListResponse, error) {
	if filter == nil {
		filter = &dto.CourseFilterRequest{}
	}
	if filter.Page < 1 {
		filter.Page = helpers.DefaultPage
	}
	if filter.PageSize <= 0 || filter.PageSize > helpers.MaxPageSize {
		filter.PageSize = helpers.DefaultPageSize
	}

	courses, totalItems, err := s.courseRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.FromCourse(&courses[i]))
	}

	return &dto.CourseListResponse{
		Courses:    items,
		Pagination: helpers.NewPaginationInfo(totalItems, filter.Page, filter.PageSize),
	}, nil
}

// GetCourseByID retrieves a single course
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	resp := dto.FromCourse(course)
	return &resp, nil
}

// ListDepartments returns the distinct department prefixes in the catalog
func (s *courseService) ListDepartments(ctx context.Context) ([]string, error) {
	departments, err := s.courseRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}

	if departments == nil {
		departments = []string{}
	}

	return departments, nil
}

// ListSBCs returns all curriculum codes with their descriptions
func (s *courseService) ListSBCs(ctx context.Context) ([]models.SBC, error) {
	sbcs, err := s.sbcRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing sbcs: %w", err)
	}

	if sbcs == nil {
		sbcs = []models.SBC{}
	}

	return sbcs, nil
}
