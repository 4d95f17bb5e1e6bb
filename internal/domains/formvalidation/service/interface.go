package service

import (
	"context"

	artistmodel "labelhub-backend/internal/domains/artist/model"
	"labelhub-backend/internal/domains/formvalidation/model"
	labelmodel "labelhub-backend/internal/domains/label/model"
	releasemodel "labelhub-backend/internal/domains/release/model"
)

// ArtistSearcher được implement bởi artist service
type ArtistSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]artistmodel.Artist, error)
}

// LabelSearcher được implement bởi label service
type LabelSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]labelmodel.Label, error)
}

// UPCLookup được implement bởi release repository
type UPCLookup interface {
	FindByUPC(ctx context.Context, upc string) (*releasemodel.Release, error)
}

type Service interface {
	ValidateUPC(ctx context.Context, upc string) (*model.UPCCheck, error)
	Artists(ctx context.Context, search string) ([]model.Option, error)
	Labels(ctx context.Context, search string) ([]model.Option, error)
}
