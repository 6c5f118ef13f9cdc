package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okan/courseatlas/internal/app/models"
)

// SBCRepository handles database operations for curriculum codes
type SBCRepository struct {
	db *pgxpool.Pool
}

// NewSBCRepository creates a new SBC repository
func NewSBCRepository(db *pgxpool.Pool) *SBCRepository {
	return &SBCRepository{
		db: db,
	}
}

// GetAll retrieves all SBC definitions ordered by code
func (r *SBCRepository) GetAll(ctx context.Context) ([]models.SBC, error) {
	query := `SELECT code, name, description FROM sbcs ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying sbcs: %w", err)
	}
	defer rows.Close()

	var sbcs []models.SBC
	for rows.Next() {
		var sbc models.SBC
		if err := rows.Scan(&sbc.Code, &sbc.Name, &sbc.Description); err != nil {
			return nil, fmt.Errorf("error scanning sbc row: %w", err)
		}
		sbcs = append(sbcs, sbc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sbcs, nil
}

// Upsert inserts an SBC definition or refreshes its name and description
func (r *SBCRepository) Upsert(ctx context.Context, sbc *models.SBC) error {
	query := `
		INSERT INTO sbcs (code, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description
	`

	if _, err := r.db.Exec(ctx, query, sbc.Code, sbc.Name, sbc.Description); err != nil {
		return fmt.Errorf("error upserting sbc: %w", err)
	}

	return nil
}
