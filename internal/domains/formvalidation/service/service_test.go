package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	artistmodel "labelhub-backend/internal/domains/artist/model"
	"labelhub-backend/internal/domains/formvalidation/model"
	labelmodel "labelhub-backend/internal/domains/label/model"
	releasemodel "labelhub-backend/internal/domains/release/model"
	"labelhub-backend/pkg/cache"
)

type mockArtists struct{ mock.Mock }

func (m *mockArtists) Search(ctx context.Context, term string, limit int) ([]artistmodel.Artist, error) {
	args := m.Called(ctx, term, limit)
	return args.Get(0).([]artistmodel.Artist), args.Error(1)
}

type mockLabels struct{ mock.Mock }

func (m *mockLabels) Search(ctx context.Context, term string, limit int) ([]labelmodel.Label, error) {
	args := m.Called(ctx, term, limit)
	return args.Get(0).([]labelmodel.Label), args.Error(1)
}

type mockReleases struct{ mock.Mock }

func (m *mockReleases) FindByUPC(ctx context.Context, upc string) (*releasemodel.Release, error) {
	args := m.Called(ctx, upc)
	if r := args.Get(0); r != nil {
		return r.(*releasemodel.Release), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestValidateUPC(t *testing.T) {
	releases := new(mockReleases)
	releases.On("FindByUPC", mock.Anything, "111").Return(nil, releasemodel.ErrReleaseNotFound)
	releases.On("FindByUPC", mock.Anything, "222").Return(&releasemodel.Release{Title: "Random Access Memories"}, nil)
	svc := NewFormValidationService(new(mockArtists), new(mockLabels), releases, cache.NewMemoryCache())

	free, err := svc.ValidateUPC(context.Background(), " 111 ")
	require.NoError(t, err)
	assert.True(t, free.Valid)

	taken, err := svc.ValidateUPC(context.Background(), "222")
	require.NoError(t, err)
	assert.False(t, taken.Valid)
	assert.Equal(t, "UPC code already exists for release: Random Access Memories", taken.Message)

	_, err = svc.ValidateUPC(context.Background(), "  ")
	assert.ErrorIs(t, err, model.ErrUPCRequired)
}

func TestArtists_CappedAndCached(t *testing.T) {
	artists := new(mockArtists)
	id := uuid.New()
	artists.On("Search", mock.Anything, "daft", model.LookupLimit).
		Return([]artistmodel.Artist{{ID: id, Name: "Daft Punk"}}, nil).Once()
	svc := NewFormValidationService(artists, new(mockLabels), new(mockReleases), cache.NewMemoryCache())

	for i := 0; i < 2; i++ {
		opts, err := svc.Artists(context.Background(), "daft")
		require.NoError(t, err)
		assert.Equal(t, []model.Option{{ID: id, Name: "Daft Punk"}}, opts)
	}
	artists.AssertNumberOfCalls(t, "Search", 1)
}

func TestLabels_Error(t *testing.T) {
	labels := new(mockLabels)
	labels.On("Search", mock.Anything, "", model.LookupLimit).Return([]labelmodel.Label(nil), assert.AnError)
	svc := NewFormValidationService(new(mockArtists), labels, new(mockReleases), cache.NewMemoryCache())

	_, err := svc.Labels(context.Background(), "")
	assert.ErrorIs(t, err, assert.AnError)
}
