package service

import (
	"context"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/label/model"
)

type Service interface {
	Create(ctx context.Context, createdBy uuid.UUID, req model.CreateLabelRequest) (*model.Label, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Label, error)
	List(ctx context.Context, req model.ListLabelsRequest) ([]model.Label, int64, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateLabelRequest) (*model.Label, error)
	// Delete: label còn release tham chiếu -> ErrLabelInUse
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, term string, limit int) ([]model.Label, error)
}
