package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/app/repositories"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
)

// RedditLinkService handles discussion links attached to courses
type RedditLinkService interface {
	GetLinksByCourseNumber(ctx context.Context, courseNumber string) ([]models.RedditLink, error)
	CreateLink(ctx context.Context, req *dto.CreateRedditLinkRequest) (*models.RedditLink, error)
	DeleteLink(ctx context.Context, id int64) error
}

type redditLinkService struct {
	linkRepo *repositories.RedditLinkRepository
}

// NewRedditLinkService creates a new reddit link service instance
func NewRedditLinkService(linkRepo *repositories.RedditLinkRepository) RedditLinkService {
	return &redditLinkService{
		linkRepo: linkRepo,
	}
}

// GetLinksByCourseNumber retrieves all discussion links for a course number.
// Unknown course numbers yield an empty list rather than an error.
func (s *redditLinkService) GetLinksByCourseNumber(ctx context.Context, courseNumber string) ([]models.RedditLink, error) {
	if strings.TrimSpace(courseNumber) == "" {
		return nil, fmt.Errorf("%w: course number is required", apperrors.ErrValidationFailed)
	}

	links, err := s.linkRepo.GetByCourseNumber(ctx, courseNumber)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reddit links: %w", err)
	}
	if links == nil {
		links = []models.RedditLink{}
	}

	return links, nil
}

// CreateLink registers a new discussion link for a course
func (s *redditLinkService) CreateLink(ctx context.Context, req *dto.CreateRedditLinkRequest) (*models.RedditLink, error) {
	link := &models.RedditLink{
		CourseNumber: req.CourseNumber,
		Title:        strings.TrimSpace(req.Title),
		URL:          strings.TrimSpace(req.URL),
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("error creating reddit link: %w", err)
	}

	return link, nil
}

// DeleteLink removes a discussion link by ID
func (s *redditLinkService) DeleteLink(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid link ID", apperrors.ErrValidationFailed)
	}

	if err := s.linkRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRedditLinkNotFound) {
			return apperrors.ErrRedditLinkNotFound
		}
		return fmt.Errorf("error deleting reddit link: %w", err)
	}

	return nil
}
