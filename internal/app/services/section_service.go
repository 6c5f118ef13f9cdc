package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
)

// SectionService serves the historical section view of a course, including
// the aggregated grade distributions the catalog UI renders.
type SectionService interface {
	GetCourseSections(ctx context.Context, courseID int64) (*dto.SectionHistoryResponse, error)
}

// sectionCourseStore is the slice of the course repository this service needs
type sectionCourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// sectionStore is the slice of the section repository this service needs
type sectionStore interface {
	GetByCourseID(ctx context.Context, courseID int64) ([]models.Section, error)
}

type sectionService struct {
	courseStore  sectionCourseStore
	sectionStore sectionStore
}

// NewSectionService creates a new section service instance
func NewSectionService(courseStore sectionCourseStore, sectionStore sectionStore) SectionService {
	return &sectionService{
		courseStore:  courseStore,
		sectionStore: sectionStore,
	}
}

// GetCourseSections retrieves all historical sections of a course plus
// server-computed aggregates.
func (s *sectionService) GetCourseSections(ctx context.Context, courseID int64) (*dto.SectionHistoryResponse, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseStore.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	sections, err := s.sectionStore.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections: %w", err)
	}

	response := &dto.SectionHistoryResponse{
		CourseID:     courseID,
		Sections:     sections,
		Semesters:    distinctSemesters(sections),
		Instructors:  distinctInstructors(sections),
		Overall:      aggregateDistribution(sections),
		ByInstructor: aggregateByInstructor(sections),
	}
	if response.Sections == nil {
		response.Sections = []models.Section{}
	}

	return response, nil
}

// distinctSemesters lists the semesters appearing in the sections,
// preserving first-seen order (sections arrive most recent first).
func distinctSemesters(sections []models.Section) []string {
	seen := make(map[string]bool)
	semesters := []string{}
	for _, section := range sections {
		if !seen[section.Semester] {
			seen[section.Semester] = true
			semesters = append(semesters, section.Semester)
		}
	}
	return semesters
}

// distinctInstructors lists the instructors appearing in the sections, sorted
func distinctInstructors(sections []models.Section) []string {
	seen := make(map[string]bool)
	instructors := []string{}
	for _, section := range sections {
		if section.Instructor != "" && !seen[section.Instructor] {
			seen[section.Instructor] = true
			instructors = append(instructors, section.Instructor)
		}
	}
	sort.Strings(instructors)
	return instructors
}

// aggregateDistribution averages the grade distributions of the given
// sections. Sections without a distribution are excluded. When every graded
// section carries an enrollment count the average is enrollment-weighted,
// otherwise it is a plain mean. Returns nil when no section has grades.
func aggregateDistribution(sections []models.Section) *models.GradeDistribution {
	graded := make([]models.Section, 0, len(sections))
	weighted := true
	for _, section := range sections {
		if section.Grades == nil {
			continue
		}
		graded = append(graded, section)
		if section.Enrollment == nil || *section.Enrollment <= 0 {
			weighted = false
		}
	}

	if len(graded) == 0 {
		return nil
	}

	var total models.GradeDistribution
	var weightSum float64
	for _, section := range graded {
		weight := 1.0
		if weighted {
			weight = float64(*section.Enrollment)
		}
		addWeighted(&total, section.Grades, weight)
		weightSum += weight
	}

	scale(&total, 1/weightSum)
	return &total
}

// aggregateByInstructor computes a per-instructor aggregate over the sections
func aggregateByInstructor(sections []models.Section) []dto.InstructorAggregate {
	byInstructor := make(map[string][]models.Section)
	order := []string{}
	for _, section := range sections {
		if section.Instructor == "" {
			continue
		}
		if _, ok := byInstructor[section.Instructor]; !ok {
			order = append(order, section.Instructor)
		}
		byInstructor[section.Instructor] = append(byInstructor[section.Instructor], section)
	}
	sort.Strings(order)

	aggregates := []dto.InstructorAggregate{}
	for _, instructor := range order {
		group := byInstructor[instructor]
		aggregate := dto.InstructorAggregate{
			Instructor:   instructor,
			SectionCount: len(group),
			Grades:       aggregateDistribution(group),
		}
		for _, section := range group {
			if section.Enrollment != nil {
				aggregate.TotalEnrollment += *section.Enrollment
			}
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates
}

func addWeighted(total *models.GradeDistribution, grades *models.GradeDistribution, weight float64) {
	total.APlus += grades.APlus * weight
	total.A += grades.A * weight
	total.AMinus += grades.AMinus * weight
	total.BPlus += grades.BPlus * weight
	total.B += grades.B * weight
	total.BMinus += grades.BMinus * weight
	total.CPlus += grades.CPlus * weight
	total.C += grades.C * weight
	total.CMinus += grades.CMinus * weight
	total.DPlus += grades.DPlus * weight
	total.D += grades.D * weight
	total.F += grades.F * weight
	total.W += grades.W * weight
}

func scale(total *models.GradeDistribution, factor float64) {
	total.APlus *= factor
	total.A *= factor
	total.AMinus *= factor
	total.BPlus *= factor
	total.B *= factor
	total.BMinus *= factor
	total.CPlus *= factor
	total.C *= factor
	total.CMinus *= factor
	total.DPlus *= factor
	total.D *= factor
	total.F *= factor
	total.W *= factor
}
