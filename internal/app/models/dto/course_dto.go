package dto

import "github.com/okan/courseatlas/internal/app/models"

// CourseFilterRequest carries the optional course search filters.
type CourseFilterRequest struct {
	Department string
	SBC        string
	Search     string
	Page       int
	PageSize   int
}

// CourseResponse represents a single course in list and detail responses
type CourseResponse struct {
	ID          int64    `json:"id"`
	Code        string   `json:"code"`
	Department  string   `json:"department"`
	Number      string   `json:"number"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Credits     int      `json:"credits"`
	SBCs        []string `json:"sbcs"`
	Prereqs     string   `json:"prereqs,omitempty"`
}

// CourseListResponse represents a page of course search results
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}

	resp := CourseResponse{
		ID:         course.ID,
		Code:       course.Code(),
		Department: course.Department,
		Number:     course.Number,
		Title:      course.Title,
		Credits:    course.Credits,
		SBCs:       course.SBCs,
	}
	if resp.SBCs == nil {
		resp.SBCs = []string{}
	}
	if course.Description != nil {
		resp.Description = *course.Description
	}
	if course.Prereqs != nil {
		resp.Prereqs = *course.Prereqs
	}

	return resp
}
