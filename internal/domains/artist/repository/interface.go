package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/artist/model"
)

// Repository truy cập bảng artists
type Repository interface {
	Create(ctx context.Context, a *model.Artist) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int64, error)
	// Search: name ILIKE, sắp xếp theo name, tối đa limit bản ghi
	Search(ctx context.Context, term string, limit int) ([]model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpsertByNameWithTx trả về id artist theo name, tạo mới nếu chưa có (release form)
	UpsertByNameWithTx(ctx context.Context, tx pgx.Tx, name string, createdBy uuid.UUID) (uuid.UUID, error)
}
