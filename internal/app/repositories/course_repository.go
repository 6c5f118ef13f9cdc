package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/pkg/logger"
)

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const courseColumns = "id, department, number, title, description, credits, sbcs, prereqs"

// scanCourse scans one course row
func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Department,
		&course.Number,
		&course.Title,
		&course.Description,
		&course.Credits,
		&course.SBCs,
		&course.Prereqs,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Search retrieves courses matching the optional filters, with the page of
// results and the total match count.
func (r *CourseRepository) Search(ctx context.Context, filter *dto.CourseFilterRequest) ([]models.Course, int64, error) {
	offset := uint64((filter.Page - 1) * filter.PageSize)

	baseSelect := r.sb.Select(
		"id", "department", "number", "title", "description", "credits", "sbcs", "prereqs",
	).From("courses")

	countSelect := r.sb.Select("COUNT(*)").From("courses")

	whereCondition := squirrel.And{}
	if dept := strings.ToUpper(strings.TrimSpace(filter.Department)); dept != "" {
		whereCondition = append(whereCondition, squirrel.Eq{"department": dept})
	}
	if sbc := strings.ToUpper(strings.TrimSpace(filter.SBC)); sbc != "" {
		whereCondition = append(whereCondition, squirrel.Expr("? = ANY(sbcs)", sbc))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		whereCondition = append(whereCondition, squirrel.Or{
			squirrel.Expr("department || number ILIKE ?", strings.ReplaceAll(pattern, " ", "")),
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	if len(whereCondition) > 0 {
		baseSelect = baseSelect.Where(whereCondition)
		countSelect = countSelect.Where(whereCondition)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count courses SQL")
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count courses query")
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	if totalItems == 0 {
		return []models.Course{}, 0, nil
	}

	baseSelect = baseSelect.
		OrderBy("department ASC", "number ASC").
		Limit(uint64(filter.PageSize)).
		Offset(offset)

	querySql, queryArgs, err := baseSelect.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building search courses SQL")
		return nil, 0, fmt.Errorf("failed to build search courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search courses query")
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, totalItems, nil
}

// GetByID retrieves a course by ID, or nil when it does not exist
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE id = $1", courseColumns)

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByCode retrieves a course by department prefix and number, or nil
func (r *CourseRepository) GetByCode(ctx context.Context, department, number string) (*models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE department = $1 AND number = $2", courseColumns)

	course, err := scanCourse(r.db.QueryRow(ctx, query, strings.ToUpper(department), number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course by code: %w", err)
	}

	return course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (department, number, title, description, credits, sbcs, prereqs)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Department, course.Number, course.Title, course.Description,
		course.Credits, course.SBCs, course.Prereqs,
	).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// ListDepartments retrieves the distinct department prefixes in the catalog
func (r *CourseRepository) ListDepartments(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT department FROM courses ORDER BY department`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var department string
		if err := rows.Scan(&department); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
