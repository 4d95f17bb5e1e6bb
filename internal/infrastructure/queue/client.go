package queue

import (
	"context"
	"encoding/json"
	"time"

	"labelhub-backend/internal/shared"

	"github.com/hibiken/asynq"
)

// TaskEnqueuer được implement bởi *asynq.Client.
// Services phụ thuộc interface này để test không cần Redis.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewClient(redisAddr, password string, db int) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})
}

// NewRefreshStatsTask tạo task refresh dashboard stats.
// Unique trong 10s để nhiều lần create/approve liên tiếp chỉ tạo một task.
func NewRefreshStatsTask(reason string) (*asynq.Task, []asynq.Option, error) {
	payload, err := json.Marshal(shared.RefreshStatsPayload{
		Reason:    reason,
		Requested: time.Now().UTC(),
	})
	if err != nil {
		return nil, nil, err
	}

	opts := []asynq.Option{
		asynq.Queue(shared.QueueDashboard),
		asynq.MaxRetry(2),
		asynq.Timeout(30 * time.Second),
		asynq.Unique(10 * time.Second),
	}
	return asynq.NewTask(shared.TypeRefreshDashboardStats, payload), opts, nil
}
