package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	dashboardmodel "labelhub-backend/internal/domains/dashboard/model"
	"labelhub-backend/internal/shared"
	"labelhub-backend/pkg/logger"
)

// StatsRefresher được implement bởi dashboard service
type StatsRefresher interface {
	RefreshAdminStats(ctx context.Context) (*dashboardmodel.AdminStats, error)
}

// RefreshStatsHandler xử lý task dashboard:refresh_stats: tính lại admin stats và ghi đè cache
func RefreshStatsHandler(refresher StatsRefresher) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p shared.RefreshStatsPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry) // Sai format payload, skip retry
		}

		stats, err := refresher.RefreshAdminStats(ctx)
		if err != nil {
			return err // Lỗi database, retry lại
		}

		logger.Info("dashboard stats refreshed", map[string]interface{}{
			"reason":         p.Reason,
			"total_releases": stats.TotalReleases,
		})
		return nil
	}
}
