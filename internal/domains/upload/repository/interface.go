package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/upload/model"
)

type Repository interface {
	Create(ctx context.Context, u *model.Upload) error
	CreateWithTx(ctx context.Context, tx pgx.Tx, u *model.Upload) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Upload, error)
	List(ctx context.Context, req model.ListUploadsRequest) ([]model.Upload, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
