package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/dashboard/model"
)

type Repository interface {
	AdminStats(ctx context.Context, submissionsSince time.Time) (*model.AdminStats, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error)
	RecentActivity(ctx context.Context, scope model.Scope, limit int) ([]model.Activity, error)
	RecentReleases(ctx context.Context, scope model.Scope, limit int) ([]model.RecentRelease, error)
}
