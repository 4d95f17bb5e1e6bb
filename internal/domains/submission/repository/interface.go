package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/submission/model"
)

type Repository interface {
	CreateWithTx(ctx context.Context, tx pgx.Tx, s *model.Submission) error
	// FindByID kèm release (title, status, artist) và uploader
	FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error)
	List(ctx context.Context, req model.ListSubmissionsRequest) ([]model.Submission, int64, error)
	// MarkReviewedWithTx stamp admin_notes/reviewed_by/reviewed_at cho mọi submission của release
	MarkReviewedWithTx(ctx context.Context, tx pgx.Tx, releaseID, reviewer uuid.UUID, notes *string) (int64, error)
	Statistics(ctx context.Context, since time.Time) (*model.Statistics, error)
}
