package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
	"github.com/okan/courseatlas/internal/pkg/rmp"
)

type fakeProfessorStore struct {
	byName    map[string]*models.Professor
	withLinks []models.Professor
	upserted  []*models.Professor
	upsertErr error
}

func (f *fakeProfessorStore) GetByName(ctx context.Context, name string) (*models.Professor, error) {
	return f.byName[name], nil
}

func (f *fakeProfessorStore) ListWithRMPLinks(ctx context.Context) ([]models.Professor, error) {
	return f.withLinks, nil
}

func (f *fakeProfessorStore) UpsertRatings(ctx context.Context, professor *models.Professor) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, professor)
	return nil
}

type fakeRatingFetcher struct {
	distributions map[string]*rmp.Distribution
	errs          map[string]error
}

func (f *fakeRatingFetcher) FetchDistribution(ctx context.Context, pageURL string) (*rmp.Distribution, error) {
	if err, ok := f.errs[pageURL]; ok {
		return nil, err
	}
	return f.distributions[pageURL], nil
}

func TestProfessorService_GetProfessorByName(t *testing.T) {
	t.Parallel()

	store := &fakeProfessorStore{
		byName: map[string]*models.Professor{
			"Jane Doe": {
				ID: 1, Name: "Jane Doe", RMPLink: "https://example.com/jane",
				Rating1Count: 1, Rating2Count: 0, Rating3Count: 2, Rating4Count: 3, Rating5Count: 4,
			},
			"No Ratings": {ID: 2, Name: "No Ratings"},
		},
	}
	svc := NewProfessorService(store, &fakeRatingFetcher{})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		prof, err := svc.GetProfessorByName(context.Background(), "Jane Doe")
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", prof.Name)
		assert.Equal(t, 10, prof.TotalRatings)
		// (1*1 + 2*3 + 3*4 + 4*5) / 10 = 3.9
		assert.InDelta(t, 3.9, prof.AverageRating, 0.001)
	})

	t.Run("empty name fails validation", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetProfessorByName(context.Background(), "   ")
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown professor", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetProfessorByName(context.Background(), "Nobody")
		require.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
	})

	t.Run("professor without ratings", func(t *testing.T) {
		t.Parallel()

		_, err := svc.GetProfessorByName(context.Background(), "No Ratings")
		require.ErrorIs(t, err, apperrors.ErrNoRatingsFound)
	})
}

func TestProfessorService_SyncRatings(t *testing.T) {
	t.Parallel()

	store := &fakeProfessorStore{
		withLinks: []models.Professor{
			{ID: 1, Name: "Jane Doe", RMPLink: "https://example.com/jane"},
			{ID: 2, Name: "Gone Page", RMPLink: "https://example.com/gone"},
			{ID: 3, Name: "Broken Fetch", RMPLink: "https://example.com/broken"},
		},
	}
	fetcher := &fakeRatingFetcher{
		distributions: map[string]*rmp.Distribution{
			"https://example.com/jane": {R1: 1, R2: 2, R3: 3, R4: 4, R5: 5},
		},
		errs: map[string]error{
			"https://example.com/gone":   rmp.ErrNoDistribution,
			"https://example.com/broken": errors.New("connection refused"),
		},
	}

	svc := NewProfessorService(store, fetcher)
	result, err := svc.SyncRatings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Broken Fetch"}, result.Failed)

	require.Len(t, store.upserted, 1)
	assert.Equal(t, "Jane Doe", store.upserted[0].Name)
	assert.Equal(t, 5, store.upserted[0].Rating5Count)
}

func TestProfessorService_SyncRatings_ContextCanceled(t *testing.T) {
	t.Parallel()

	store := &fakeProfessorStore{
		withLinks: []models.Professor{
			{ID: 1, Name: "Jane Doe", RMPLink: "https://example.com/jane"},
		},
	}
	fetcher := &fakeRatingFetcher{
		errs: map[string]error{
			"https://example.com/jane": context.Canceled,
		},
	}

	svc := NewProfessorService(store, fetcher)
	_, err := svc.SyncRatings(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}
