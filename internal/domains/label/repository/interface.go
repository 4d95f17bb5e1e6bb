package repository

import (
	"context"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/label/model"
)

type Repository interface {
	Create(ctx context.Context, l *model.Label) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Label, error)
	List(ctx context.Context, req model.ListLabelsRequest) ([]model.Label, int64, error)
	Search(ctx context.Context, term string, limit int) ([]model.Label, error)
	Update(ctx context.Context, l *model.Label) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountReleases: số release đang tham chiếu label
	CountReleases(ctx context.Context, id uuid.UUID) (int64, error)
}
