package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okan/courseatlas/internal/app/models"
)

// SectionRepository handles database operations for historical course sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// GetByCourseID retrieves all historical sections of a course, most recent
// semesters first. Grade columns are nullable as a block: a section either
// carries a full distribution or none at all.
func (r *SectionRepository) GetByCourseID(ctx context.Context, courseID int64) ([]models.Section, error) {
	query := `
		SELECT id, course_id, semester, section_code, instructor, enrollment,
		       a_plus, a, a_minus, b_plus, b, b_minus,
		       c_plus, c, c_minus, d_plus, d, f, w
		FROM sections
		WHERE course_id = $1
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var section models.Section
		var enrollment sql.NullInt64
		var aPlus, a, aMinus, bPlus, b, bMinus, cPlus, c, cMinus, dPlus, d, f, w sql.NullFloat64

		err := rows.Scan(
			&section.ID, &section.CourseID, &section.Semester,
			&section.SectionCode, &section.Instructor, &enrollment,
			&aPlus, &a, &aMinus, &bPlus, &b, &bMinus,
			&cPlus, &c, &cMinus, &dPlus, &d, &f, &w,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning section row: %w", err)
		}

		if enrollment.Valid {
			value := int(enrollment.Int64)
			section.Enrollment = &value
		}

		if aPlus.Valid {
			section.Grades = &models.GradeDistribution{
				APlus:  aPlus.Float64,
				A:      a.Float64,
				AMinus: aMinus.Float64,
				BPlus:  bPlus.Float64,
				B:      b.Float64,
				BMinus: bMinus.Float64,
				CPlus:  cPlus.Float64,
				C:      c.Float64,
				CMinus: cMinus.Float64,
				DPlus:  dPlus.Float64,
				D:      d.Float64,
				F:      f.Float64,
				W:      w.Float64,
			}
		}

		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// Create inserts a new section row
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (course_id, semester, section_code, instructor, enrollment,
		                      a_plus, a, a_minus, b_plus, b, b_minus,
		                      c_plus, c, c_minus, d_plus, d, f, w)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	var enrollment sql.NullInt64
	if section.Enrollment != nil {
		enrollment = sql.NullInt64{Int64: int64(*section.Enrollment), Valid: true}
	}

	grades := make([]sql.NullFloat64, 13)
	if g := section.Grades; g != nil {
		for i, v := range []float64{g.APlus, g.A, g.AMinus, g.BPlus, g.B, g.BMinus, g.CPlus, g.C, g.CMinus, g.DPlus, g.D, g.F, g.W} {
			grades[i] = sql.NullFloat64{Float64: v, Valid: true}
		}
	}

	args := []interface{}{
		section.CourseID, section.Semester, section.SectionCode,
		section.Instructor, enrollment,
	}
	for _, g := range grades {
		args = append(args, g)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&section.ID); err != nil {
		return fmt.Errorf("error creating section: %w", err)
	}

	return nil
}
