package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"labelhub-backend/internal/domains/release/model"
)

// StatsRefresher được implement bởi *queue.StatsRefresher
type StatsRefresher interface {
	RequestRefresh(ctx context.Context, reason string)
}

type Service interface {
	// Create: title, artist_id, upc, genre bắt buộc; UPC trùng -> ErrUPCAlreadyExists
	Create(ctx context.Context, actorID uuid.UUID, req model.CreateReleaseRequest, files model.ReleaseFiles) (*model.Release, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Release, error)
	List(ctx context.Context, req model.ListReleasesRequest) ([]model.Release, int64, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req model.UpdateReleaseRequest, files model.ReleaseFiles) (*model.Release, error)
	// UpdateStatus: approved stamps approved_by + approved_at
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, status model.Status) (*model.Release, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Export xlsx theo cùng bộ filter với List
	Export(ctx context.Context, req model.ListReleasesRequest) (*excelize.File, error)
}
