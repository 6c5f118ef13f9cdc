package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okan/courseatlas/internal/app/models"
)

// ProfessorRepository handles database operations for professor ratings
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
	}
}

const professorColumns = `id, name, rmp_link,
	rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count,
	updated_at`

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	var professor models.Professor
	err := row.Scan(
		&professor.ID,
		&professor.Name,
		&professor.RMPLink,
		&professor.Rating1Count,
		&professor.Rating2Count,
		&professor.Rating3Count,
		&professor.Rating4Count,
		&professor.Rating5Count,
		&professor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

// GetByName retrieves a professor by display name. The match is
// case-insensitive exact first, with a substring fallback so partial
// names from the search box still resolve.
func (r *ProfessorRepository) GetByName(ctx context.Context, name string) (*models.Professor, error) {
	name = strings.TrimSpace(name)

	query := fmt.Sprintf("SELECT %s FROM professors WHERE LOWER(name) = LOWER($1)", professorColumns)
	professor, err := scanProfessor(r.db.QueryRow(ctx, query, name))
	if err == nil {
		return professor, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	fallback := fmt.Sprintf("SELECT %s FROM professors WHERE name ILIKE $1 ORDER BY name LIMIT 1", professorColumns)
	professor, err = scanProfessor(r.db.QueryRow(ctx, fallback, "%"+name+"%"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	return professor, nil
}

// ListWithRMPLinks retrieves all professors that have an RMP page to sync from
func (r *ProfessorRepository) ListWithRMPLinks(ctx context.Context) ([]models.Professor, error) {
	query := fmt.Sprintf("SELECT %s FROM professors WHERE rmp_link <> '' ORDER BY name", professorColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing professors: %w", err)
	}
	defer rows.Close()

	var professors []models.Professor
	for rows.Next() {
		professor, err := scanProfessor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning professor row: %w", err)
		}
		professors = append(professors, *professor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return professors, nil
}

// UpsertRatings inserts a professor row or refreshes the rating counts of
// an existing one. Rows are keyed by name, matching the ingestion source.
func (r *ProfessorRepository) UpsertRatings(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (name, rmp_link,
			rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count,
			updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (name) DO UPDATE SET
			rmp_link = EXCLUDED.rmp_link,
			rating_1_count = EXCLUDED.rating_1_count,
			rating_2_count = EXCLUDED.rating_2_count,
			rating_3_count = EXCLUDED.rating_3_count,
			rating_4_count = EXCLUDED.rating_4_count,
			rating_5_count = EXCLUDED.rating_5_count,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		professor.Name, professor.RMPLink,
		professor.Rating1Count, professor.Rating2Count, professor.Rating3Count,
		professor.Rating4Count, professor.Rating5Count,
	).Scan(&professor.ID, &professor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting professor ratings: %w", err)
	}

	return nil
}
