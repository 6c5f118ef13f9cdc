package dto

import "github.com/okan/courseatlas/internal/app/models"

// InstructorAggregate is the aggregated grade distribution for one
// instructor across all of their sections of a course.
type InstructorAggregate struct {
	Instructor      string                    `json:"instructor"`
	SectionCount    int                       `json:"sectionCount"`
	TotalEnrollment int                       `json:"totalEnrollment"`
	Grades          *models.GradeDistribution `json:"grades,omitempty"`
}

// SectionHistoryResponse is the full section history of a course plus
// the server-computed aggregates the catalog UI renders.
type SectionHistoryResponse struct {
	CourseID     int64                     `json:"courseId"`
	Sections     []models.Section          `json:"sections"`
	Semesters    []string                  `json:"semesters"`
	Instructors  []string                  `json:"instructors"`
	Overall      *models.GradeDistribution `json:"overall,omitempty"`
	ByInstructor []InstructorAggregate     `json:"byInstructor"`
}
