package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/dashboard/model"
	"labelhub-backend/internal/domains/dashboard/repository"
	"labelhub-backend/internal/shared"
	"labelhub-backend/pkg/cache"
	"labelhub-backend/pkg/logger"
)

const (
	AdminStatsKey      = "dashboard:admin_stats"
	AdminStatsTTL      = 60 * time.Second
	submissionsWindow  = 7 * 24 * time.Hour
	DefaultActivityN   = 10
	DefaultRecentCount = 5
)

type dashboardService struct {
	repo  repository.Repository
	cache cache.Cache
}

func NewDashboardService(repo repository.Repository, cache cache.Cache) Service {
	return &dashboardService{repo: repo, cache: cache}
}

func (s *dashboardService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	var cached model.AdminStats
	found, err := s.cache.Get(ctx, AdminStatsKey, &cached)
	if err != nil {
		// Cache lỗi không chặn dashboard: fallback về database
		logger.Error("read cached admin stats", err)
	}
	if found {
		return &cached, nil
	}
	return s.RefreshAdminStats(ctx)
}

func (s *dashboardService) RefreshAdminStats(ctx context.Context) (*model.AdminStats, error) {
	stats, err := s.repo.AdminStats(ctx, time.Now().Add(-submissionsWindow))
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	if err := s.cache.Set(ctx, AdminStatsKey, stats, AdminStatsTTL); err != nil {
		logger.Error("cache admin stats", err)
	}
	return stats, nil
}

func (s *dashboardService) UserStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error) {
	stats, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return stats, nil
}

func (s *dashboardService) RecentActivity(ctx context.Context, actorID uuid.UUID, role string, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityN
	}
	return s.repo.RecentActivity(ctx, scopeFor(actorID, role), limit)
}

func (s *dashboardService) RecentReleases(ctx context.Context, actorID uuid.UUID, role string, limit int) ([]model.RecentRelease, error) {
	if limit <= 0 {
		limit = DefaultRecentCount
	}
	return s.repo.RecentReleases(ctx, scopeFor(actorID, role), limit)
}

// scopeFor: staff thấy toàn hệ thống, role khác chỉ thấy dữ liệu của mình
func scopeFor(actorID uuid.UUID, role string) model.Scope {
	if shared.IsStaff(role) {
		return model.Scope{}
	}
	return model.Scope{OwnerID: &actorID}
}
