package queue

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"

	"labelhub-backend/pkg/logger"
)

// StatsRefresher enqueue task refresh dashboard stats sau mỗi thay đổi release.
// Lỗi enqueue chỉ được log: stats cache vẫn hết hạn theo TTL.
type StatsRefresher struct {
	client TaskEnqueuer
}

func NewStatsRefresher(client TaskEnqueuer) *StatsRefresher {
	return &StatsRefresher{client: client}
}

func (r *StatsRefresher) RequestRefresh(ctx context.Context, reason string) {
	if r == nil || r.client == nil {
		return
	}

	task, opts, err := NewRefreshStatsTask(reason)
	if err != nil {
		logger.Error("build refresh stats task", err)
		return
	}

	if _, err := r.client.EnqueueContext(ctx, task, opts...); err != nil {
		// Unique(10s): task đang chờ đã đủ
		if errors.Is(err, asynq.ErrDuplicateTask) {
			return
		}
		logger.Error("enqueue refresh stats task", err)
	}
}
