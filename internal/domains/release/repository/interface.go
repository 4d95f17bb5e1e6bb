package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/release/model"
)

type Repository interface {
	Create(ctx context.Context, r *model.Release) error
	// FindByID kèm artist và label
	FindByID(ctx context.Context, id uuid.UUID) (*model.Release, error)
	FindByUPC(ctx context.Context, upc string) (*model.Release, error)
	List(ctx context.Context, req model.ListReleasesRequest) ([]model.Release, int64, error)
	// ListAll cho export: không phân trang, tối đa limit bản ghi
	ListAll(ctx context.Context, req model.ListReleasesRequest, limit int) ([]model.Release, error)
	Update(ctx context.Context, r *model.Release) error
	// UpdateStatus: approvedBy != nil thì stamp approved_by/approved_at
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, approvedBy *uuid.UUID) (*model.Release, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Transaction variants (release-form)
	CreateWithTx(ctx context.Context, tx pgx.Tx, r *model.Release) error
	UpdateStatusWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.Status, approvedBy *uuid.UUID) (*model.Release, error)
}
