package service

import (
	"context"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/artist/model"
)

type Service interface {
	Create(ctx context.Context, createdBy uuid.UUID, req model.CreateArtistRequest) (*model.Artist, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int64, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateArtistRequest) (*model.Artist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Search phục vụ autocomplete của form
	Search(ctx context.Context, term string, limit int) ([]model.Artist, error)
}
