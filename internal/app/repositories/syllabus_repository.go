package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okan/courseatlas/internal/app/models"
)

// Syllabus error types
var (
	ErrSyllabusNotFound = errors.New("syllabus not found")
)

// SyllabusRepository handles database operations for uploaded syllabi
type SyllabusRepository struct {
	db *pgxpool.Pool
}

// NewSyllabusRepository creates a new syllabus repository
func NewSyllabusRepository(db *pgxpool.Pool) *SyllabusRepository {
	return &SyllabusRepository{
		db: db,
	}
}

// GetByCourseID retrieves all syllabi for a course, newest upload first
func (r *SyllabusRepository) GetByCourseID(ctx context.Context, courseID int64) ([]models.Syllabus, error) {
	query := `
		SELECT id, course_id, semester, file_name, file_url, file_size, uploaded_at
		FROM syllabi
		WHERE course_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying syllabi: %w", err)
	}
	defer rows.Close()

	var syllabi []models.Syllabus
	for rows.Next() {
		var syllabus models.Syllabus
		err := rows.Scan(
			&syllabus.ID, &syllabus.CourseID, &syllabus.Semester,
			&syllabus.FileName, &syllabus.FileURL, &syllabus.FileSize,
			&syllabus.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning syllabus row: %w", err)
		}
		syllabi = append(syllabi, syllabus)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return syllabi, nil
}

// GetByID retrieves a syllabus by ID, or nil when it does not exist
func (r *SyllabusRepository) GetByID(ctx context.Context, id int64) (*models.Syllabus, error) {
	query := `
		SELECT id, course_id, semester, file_name, file_url, file_size, uploaded_at
		FROM syllabi
		WHERE id = $1
	`

	var syllabus models.Syllabus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&syllabus.ID, &syllabus.CourseID, &syllabus.Semester,
		&syllabus.FileName, &syllabus.FileURL, &syllabus.FileSize,
		&syllabus.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving syllabus: %w", err)
	}

	return &syllabus, nil
}

// Create inserts a new syllabus row
func (r *SyllabusRepository) Create(ctx context.Context, syllabus *models.Syllabus) error {
	query := `
		INSERT INTO syllabi (course_id, semester, file_name, file_url, file_size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query,
		syllabus.CourseID, syllabus.Semester, syllabus.FileName,
		syllabus.FileURL, syllabus.FileSize,
	).Scan(&syllabus.ID, &syllabus.UploadedAt)
	if err != nil {
		return fmt.Errorf("error creating syllabus: %w", err)
	}

	return nil
}

// Delete removes a syllabus row by ID
func (r *SyllabusRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM syllabi WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting syllabus: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSyllabusNotFound
	}

	return nil
}
