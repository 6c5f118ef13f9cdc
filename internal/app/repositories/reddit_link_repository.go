package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okan/courseatlas/internal/app/models"
)

// RedditLink error types
var (
	ErrRedditLinkNotFound = errors.New("reddit link not found")
)

// RedditLinkRepository handles database operations for discussion links
type RedditLinkRepository struct {
	db *pgxpool.Pool
}

// NewRedditLinkRepository creates a new reddit link repository
func NewRedditLinkRepository(db *pgxpool.Pool) *RedditLinkRepository {
	return &RedditLinkRepository{
		db: db,
	}
}

// normalizeCourseNumber collapses "cse 320" and "CSE320" to the stored form
func normalizeCourseNumber(courseNumber string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(courseNumber), " ", ""))
}

// GetByCourseNumber retrieves all links recorded for a course number
func (r *RedditLinkRepository) GetByCourseNumber(ctx context.Context, courseNumber string) ([]models.RedditLink, error) {
	query := `
		SELECT id, course_number, title, url, posted_at
		FROM reddit_links
		WHERE course_number = $1
		ORDER BY posted_at DESC
	`

	rows, err := r.db.Query(ctx, query, normalizeCourseNumber(courseNumber))
	if err != nil {
		return nil, fmt.Errorf("error querying reddit links: %w", err)
	}
	defer rows.Close()

	var links []models.RedditLink
	for rows.Next() {
		var link models.RedditLink
		if err := rows.Scan(&link.ID, &link.CourseNumber, &link.Title, &link.URL, &link.PostedAt); err != nil {
			return nil, fmt.Errorf("error scanning reddit link row: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

// Create inserts a new discussion link
func (r *RedditLinkRepository) Create(ctx context.Context, link *models.RedditLink) error {
	link.CourseNumber = normalizeCourseNumber(link.CourseNumber)

	query := `
		INSERT INTO reddit_links (course_number, title, url, posted_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, posted_at
	`

	err := r.db.QueryRow(ctx, query, link.CourseNumber, link.Title, link.URL).
		Scan(&link.ID, &link.PostedAt)
	if err != nil {
		return fmt.Errorf("error creating reddit link: %w", err)
	}

	return nil
}

// Delete removes a discussion link by ID
func (r *RedditLinkRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reddit_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting reddit link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrRedditLinkNotFound
	}

	return nil
}
