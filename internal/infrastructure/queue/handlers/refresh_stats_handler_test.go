package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboardmodel "labelhub-backend/internal/domains/dashboard/model"
	"labelhub-backend/internal/shared"
)

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) RefreshAdminStats(context.Context) (*dashboardmodel.AdminStats, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &dashboardmodel.AdminStats{TotalReleases: 7}, nil
}

func TestRefreshStatsHandler(t *testing.T) {
	refresher := &fakeRefresher{}
	payload, err := json.Marshal(shared.RefreshStatsPayload{Reason: "scheduled"})
	require.NoError(t, err)

	err = RefreshStatsHandler(refresher)(context.Background(), asynq.NewTask(shared.TypeRefreshDashboardStats, payload))
	assert.NoError(t, err)
	assert.Equal(t, 1, refresher.calls)
}

func TestRefreshStatsHandler_BadPayloadSkipsRetry(t *testing.T) {
	refresher := &fakeRefresher{}

	err := RefreshStatsHandler(refresher)(context.Background(), asynq.NewTask(shared.TypeRefreshDashboardStats, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Zero(t, refresher.calls)
}

func TestRefreshStatsHandler_RetriesOnDatabaseError(t *testing.T) {
	refresher := &fakeRefresher{err: assert.AnError}

	err := RefreshStatsHandler(refresher)(context.Background(), asynq.NewTask(shared.TypeRefreshDashboardStats, []byte(`{}`)))
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}
