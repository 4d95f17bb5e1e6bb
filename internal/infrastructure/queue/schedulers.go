package queue

import (
	"encoding/json"
	"time"

	"labelhub-backend/internal/shared"
	"labelhub-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	statsSpec string
}

// NewScheduler: statsSpec là cron spec cho job refresh stats, vd "@every 5m"
func NewScheduler(opt asynq.RedisClientOpt, statsSpec string) *Scheduler {
	scheduler := asynq.NewScheduler(
		opt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	if statsSpec == "" {
		statsSpec = "@every 5m"
	}

	return &Scheduler{
		scheduler: scheduler,
		statsSpec: statsSpec,
	}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerRefreshStatsJob()
}

// ================================================
// Refresh admin dashboard stats (mặc định mỗi 5 phút)
// ================================================
func (s *Scheduler) registerRefreshStatsJob() error {
	payload, err := json.Marshal(shared.RefreshStatsPayload{Reason: "scheduled"})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeRefreshDashboardStats, payload)

	_, err = s.scheduler.Register(
		s.statsSpec,
		task,
		asynq.Queue(shared.QueueDashboard),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register RefreshDashboardStats job", err)
		return err
	}

	logger.Info("Registered RefreshDashboardStats", map[string]interface{}{"spec": s.statsSpec})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
