package service

import (
	"context"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/dashboard/model"
)

type Service interface {
	// AdminStats đọc từ cache (TTL 60s), miss thì query và ghi lại cache
	AdminStats(ctx context.Context) (*model.AdminStats, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error)
	RecentActivity(ctx context.Context, actorID uuid.UUID, role string, limit int) ([]model.Activity, error)
	RecentReleases(ctx context.Context, actorID uuid.UUID, role string, limit int) ([]model.RecentRelease, error)
	// RefreshAdminStats được worker gọi khi xử lý task dashboard:refresh_stats
	RefreshAdminStats(ctx context.Context) (*model.AdminStats, error)
}
