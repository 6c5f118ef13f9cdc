package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	course *models.Course
	err    error
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return f.course, f.err
}

type fakeSectionStore struct {
	sections []models.Section
	err      error
}

func (f *fakeSectionStore) GetByCourseID(ctx context.Context, courseID int64) ([]models.Section, error) {
	return f.sections, f.err
}

func intPtr(n int) *int { return &n }

func gradesAllA() *models.GradeDistribution {
	return &models.GradeDistribution{A: 100}
}

func gradesAllB() *models.GradeDistribution {
	return &models.GradeDistribution{B: 100}
}

func TestSectionService_GetCourseSections(t *testing.T) {
	t.Parallel()

	course := &models.Course{ID: 1, Department: "CSE", Number: "320", Title: "System Fundamentals II"}

	t.Run("course not found", func(t *testing.T) {
		t.Parallel()

		svc := NewSectionService(&fakeCourseStore{}, &fakeSectionStore{})
		_, err := svc.GetCourseSections(context.Background(), 99)
		require.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("invalid course ID", func(t *testing.T) {
		t.Parallel()

		svc := NewSectionService(&fakeCourseStore{course: course}, &fakeSectionStore{})
		_, err := svc.GetCourseSections(context.Background(), 0)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("no sections yields empty history", func(t *testing.T) {
		t.Parallel()

		svc := NewSectionService(&fakeCourseStore{course: course}, &fakeSectionStore{})
		history, err := svc.GetCourseSections(context.Background(), 1)
		require.NoError(t, err)

		assert.Empty(t, history.Sections)
		assert.Empty(t, history.Semesters)
		assert.Empty(t, history.Instructors)
		assert.Nil(t, history.Overall)
		assert.Empty(t, history.ByInstructor)
	})

	t.Run("collects semesters and instructors", func(t *testing.T) {
		t.Parallel()

		sections := []models.Section{
			{CourseID: 1, Semester: "Spring 2025", SectionCode: "01", Instructor: "B. Smith"},
			{CourseID: 1, Semester: "Spring 2025", SectionCode: "02", Instructor: "A. Jones"},
			{CourseID: 1, Semester: "Fall 2024", SectionCode: "01", Instructor: "B. Smith"},
		}

		svc := NewSectionService(&fakeCourseStore{course: course}, &fakeSectionStore{sections: sections})
		history, err := svc.GetCourseSections(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, []string{"Spring 2025", "Fall 2024"}, history.Semesters)
		assert.Equal(t, []string{"A. Jones", "B. Smith"}, history.Instructors)
		assert.Len(t, history.Sections, 3)
	})
}

func TestAggregateDistribution(t *testing.T) {
	t.Parallel()

	t.Run("nil when no section has grades", func(t *testing.T) {
		t.Parallel()

		sections := []models.Section{
			{Semester: "Fall 2024", Enrollment: intPtr(50)},
		}
		assert.Nil(t, aggregateDistribution(sections))
	})

	t.Run("plain mean when enrollment is missing", func(t *testing.T) {
		t.Parallel()

		sections := []models.Section{
			{Grades: gradesAllA()},
			{Grades: gradesAllB()},
		}

		overall := aggregateDistribution(sections)
		require.NotNil(t, overall)
		assert.InDelta(t, 50.0, overall.A, 0.001)
		assert.InDelta(t, 50.0, overall.B, 0.001)
	})

	t.Run("enrollment weighted when all graded sections have enrollment", func(t *testing.T) {
		t.Parallel()

		sections := []models.Section{
			{Enrollment: intPtr(30), Grades: gradesAllA()},
			{Enrollment: intPtr(10), Grades: gradesAllB()},
		}

		overall := aggregateDistribution(sections)
		require.NotNil(t, overall)
		assert.InDelta(t, 75.0, overall.A, 0.001)
		assert.InDelta(t, 25.0, overall.B, 0.001)
	})

	t.Run("ungraded sections are excluded from the average", func(t *testing.T) {
		t.Parallel()

		sections := []models.Section{
			{Enrollment: intPtr(30), Grades: gradesAllA()},
			{Enrollment: intPtr(100)},
		}

		overall := aggregateDistribution(sections)
		require.NotNil(t, overall)
		assert.InDelta(t, 100.0, overall.A, 0.001)
	})
}

func TestAggregateByInstructor(t *testing.T) {
	t.Parallel()

	sections := []models.Section{
		{Instructor: "B. Smith", Enrollment: intPtr(40), Grades: gradesAllA()},
		{Instructor: "B. Smith", Enrollment: intPtr(40), Grades: gradesAllB()},
		{Instructor: "A. Jones", Enrollment: intPtr(25)},
		{Instructor: ""},
	}

	aggregates := aggregateByInstructor(sections)
	require.Len(t, aggregates, 2)

	// Sorted by instructor name
	assert.Equal(t, "A. Jones", aggregates[0].Instructor)
	assert.Equal(t, 1, aggregates[0].SectionCount)
	assert.Equal(t, 25, aggregates[0].TotalEnrollment)
	assert.Nil(t, aggregates[0].Grades)

	assert.Equal(t, "B. Smith", aggregates[1].Instructor)
	assert.Equal(t, 2, aggregates[1].SectionCount)
	assert.Equal(t, 80, aggregates[1].TotalEnrollment)
	require.NotNil(t, aggregates[1].Grades)
	assert.InDelta(t, 50.0, aggregates[1].Grades.A, 0.001)
	assert.InDelta(t, 50.0, aggregates[1].Grades.B, 0.001)
}
