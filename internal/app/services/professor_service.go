package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
	"github.com/okan/courseatlas/internal/pkg/logger"
	"github.com/okan/courseatlas/internal/pkg/rmp"
)

// ProfessorService handles professor rating lookups and ingestion
type ProfessorService interface {
	GetProfessorByName(ctx context.Context, name string) (*dto.ProfessorResponse, error)
	SyncRatings(ctx context.Context) (*dto.RatingSyncResponse, error)
}

// professorStore is the slice of the professor repository this service needs
type professorStore interface {
	GetByName(ctx context.Context, name string) (*models.Professor, error)
	ListWithRMPLinks(ctx context.Context) ([]models.Professor, error)
	UpsertRatings(ctx context.Context, professor *models.Professor) error
}

// RatingFetcher retrieves a professor's rating distribution from their page
type RatingFetcher interface {
	FetchDistribution(ctx context.Context, pageURL string) (*rmp.Distribution, error)
}

type professorService struct {
	store   professorStore
	fetcher RatingFetcher
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(store professorStore, fetcher RatingFetcher) ProfessorService {
	return &professorService{
		store:   store,
		fetcher: fetcher,
	}
}

// GetProfessorByName retrieves a professor's rating summary by display name
func (s *professorService) GetProfessorByName(ctx context.Context, name string) (*dto.ProfessorResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: professor name is required", apperrors.ErrValidationFailed)
	}

	professor, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}
	if professor.TotalRatings() == 0 {
		return nil, apperrors.ErrNoRatingsFound
	}

	response := dto.FromProfessor(professor)
	return &response, nil
}

// SyncRatings refreshes the rating counts of every professor that has a
// ratings page on record. Failures on individual professors are collected
// rather than aborting the run.
func (s *professorService) SyncRatings(ctx context.Context) (*dto.RatingSyncResponse, error) {
	professors, err := s.store.ListWithRMPLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing professors: %w", err)
	}

	result := &dto.RatingSyncResponse{}
	for i := range professors {
		professor := &professors[i]

		dist, err := s.fetcher.FetchDistribution(ctx, professor.RMPLink)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			if errors.Is(err, rmp.ErrNoRelayStore) || errors.Is(err, rmp.ErrNoDistribution) {
				logger.Warn().Str("professor", professor.Name).Err(err).Msg("No rating distribution on page, skipping")
				result.Skipped++
				continue
			}
			logger.Error().Str("professor", professor.Name).Err(err).Msg("Failed to fetch rating distribution")
			result.Failed = append(result.Failed, professor.Name)
			continue
		}

		professor.Rating1Count = dist.R1
		professor.Rating2Count = dist.R2
		professor.Rating3Count = dist.R3
		professor.Rating4Count = dist.R4
		professor.Rating5Count = dist.R5

		if err := s.store.UpsertRatings(ctx, professor); err != nil {
			logger.Error().Str("professor", professor.Name).Err(err).Msg("Failed to store rating distribution")
			result.Failed = append(result.Failed, professor.Name)
			continue
		}

		logger.Info().
			Str("professor", professor.Name).
			Int("totalRatings", dist.Total()).
			Msg("Synced professor ratings")
		result.Synced++
	}

	return result, nil
}
