package service

import (
	"context"

	"github.com/google/uuid"

	releasemodel "labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/domains/submission/model"
)

// StatsRefresher được implement bởi *queue.StatsRefresher
type StatsRefresher interface {
	RequestRefresh(ctx context.Context, reason string)
}

type Service interface {
	// Create: upsert artist -> tạo release pending -> ghi submission, trong một transaction
	Create(ctx context.Context, actorID uuid.UUID, req model.CreateSubmissionRequest, files releasemodel.ReleaseFiles) (*model.CreateSubmissionResult, error)
	// Get: chỉ owner hoặc admin
	Get(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) (*model.Submission, error)
	List(ctx context.Context, req model.ListSubmissionsRequest) ([]model.Submission, int64, error)
	// UpdateStatus đổi status release và stamp review lên các submission của release
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req model.UpdateStatusRequest) (*releasemodel.Release, error)
	Statistics(ctx context.Context) (*model.Statistics, error)
}
