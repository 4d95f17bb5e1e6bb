package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"labelhub-backend/internal/domains/label/model"
	"labelhub-backend/pkg/cache"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, l *model.Label) error {
	args := m.Called(ctx, l)
	if args.Error(0) == nil {
		l.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*model.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, req model.ListLabelsRequest) ([]model.Label, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]model.Label), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) Search(ctx context.Context, term string, limit int) ([]model.Label, error) {
	args := m.Called(ctx, term, limit)
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, l *model.Label) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) CountReleases(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreate_TrimmedName(t *testing.T) {
	repo := new(mockRepo)
	svc := NewLabelService(repo, cache.NewMemoryCache())
	creator := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Label) bool {
		return l.Name == "Ninja Tune" && l.Description == "" && *l.CreatedBy == creator
	})).Return(nil)

	l, err := svc.Create(context.Background(), creator, model.CreateLabelRequest{Name: " Ninja Tune  "})
	require.NoError(t, err)
	assert.Equal(t, "Ninja Tune", l.Name)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := new(mockRepo)
	svc := NewLabelService(repo, cache.NewMemoryCache())
	repo.On("Create", mock.Anything, mock.Anything).Return(model.ErrLabelAlreadyExists)

	_, err := svc.Create(context.Background(), uuid.New(), model.CreateLabelRequest{Name: "Warp"})
	assert.ErrorIs(t, err, model.ErrLabelAlreadyExists)
}

func TestCreate_RequiresName(t *testing.T) {
	repo := new(mockRepo)
	svc := NewLabelService(repo, cache.NewMemoryCache())

	_, err := svc.Create(context.Background(), uuid.New(), model.CreateLabelRequest{Name: "   "})
	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDelete_ReferencedLabel(t *testing.T) {
	repo := new(mockRepo)
	svc := NewLabelService(repo, cache.NewMemoryCache())
	id := uuid.New()
	repo.On("CountReleases", mock.Anything, id).Return(int64(2), nil)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrLabelInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_UnreferencedLabel(t *testing.T) {
	repo := new(mockRepo)
	svc := NewLabelService(repo, cache.NewMemoryCache())
	id := uuid.New()
	repo.On("CountReleases", mock.Anything, id).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}

func TestUpdate_KeepsUnsetFields(t *testing.T) {
	repo := new(mockRepo)
	svc := NewLabelService(repo, cache.NewMemoryCache())
	id := uuid.New()
	site := "https://warp.net"
	repo.On("FindByID", mock.Anything, id).Return(&model.Label{ID: id, Name: "Warp", Website: &site}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	desc := " electronic "
	l, err := svc.Update(context.Background(), id, model.UpdateLabelRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Warp", l.Name)
	assert.Equal(t, "electronic", l.Description)
	assert.Equal(t, &site, l.Website)
}

func TestWrites_InvalidateLookupCache(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	c := cache.NewMemoryCache()
	svc := NewLabelService(repo, c)
	id := uuid.New()

	seed := func() {
		require.NoError(t, c.Set(ctx, "formvalidation:labels:", []string{"stale"}, 0))
		require.NoError(t, c.Set(ctx, "formvalidation:labels:wa", []string{"stale"}, 0))
		require.NoError(t, c.Set(ctx, "dashboard:admin_stats", 1, 0))
	}
	assertCleared := func() {
		var v []string
		found, _ := c.Get(ctx, "formvalidation:labels:", &v)
		assert.False(t, found)
		found, _ = c.Get(ctx, "formvalidation:labels:wa", &v)
		assert.False(t, found)
		var n int
		found, _ = c.Get(ctx, "dashboard:admin_stats", &n)
		assert.True(t, found)
	}

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("FindByID", mock.Anything, id).Return(&model.Label{ID: id, Name: "Warp"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	repo.On("Delete", mock.Anything, id).Return(nil)
	repo.On("CountReleases", mock.Anything, id).Return(int64(0), nil)

	seed()
	_, err := svc.Create(ctx, uuid.New(), model.CreateLabelRequest{Name: "Ninja Tune"})
	require.NoError(t, err)
	assertCleared()

	seed()
	name := "Warp Records"
	_, err = svc.Update(ctx, id, model.UpdateLabelRequest{Name: &name})
	require.NoError(t, err)
	assertCleared()

	seed()
	require.NoError(t, svc.Delete(ctx, id))
	assertCleared()
}
