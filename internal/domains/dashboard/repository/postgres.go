package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/dashboard/model"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/database"
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

// statusCounts: GROUP BY status, có thể lọc theo created_by
func (r *postgresRepository) statusCounts(ctx context.Context, owner *uuid.UUID) (map[string]int64, int64, error) {
	var where utils.WhereBuilder
	if owner != nil {
		where.Add("created_by = ?", *owner)
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM releases`+where.Clause()+` GROUP BY status`, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("count releases by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	var total int64
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, 0, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}
	return counts, total, nil
}

func (r *postgresRepository) AdminStats(ctx context.Context, submissionsSince time.Time) (*model.AdminStats, error) {
	counts, total, err := r.statusCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := &model.AdminStats{
		TotalReleases:    total,
		ReleasesByStatus: counts,
		PendingApprovals: counts["pending"],
		GeneratedAt:      time.Now().UTC(),
	}

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM artists),
			(SELECT COUNT(*) FROM labels),
			(SELECT COUNT(*) FROM uploads WHERE created_at >= $1)
	`
	err = r.db.QueryRow(ctx, query, submissionsSince).
		Scan(&stats.TotalUsers, &stats.TotalArtists, &stats.TotalLabels, &stats.RecentSubmissions)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}
	return stats, nil
}

func (r *postgresRepository) UserStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error) {
	counts, total, err := r.statusCounts(ctx, &userID)
	if err != nil {
		return nil, err
	}

	stats := &model.UserStats{
		TotalReleases:    total,
		ReleasesByStatus: counts,
		PendingReleases:  counts["pending"],
		ApprovedReleases: counts["approved"],
	}
	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM uploads WHERE uploaded_by = $1`, userID).Scan(&stats.TotalSubmissions)
	if err != nil {
		return nil, fmt.Errorf("count user submissions: %w", err)
	}
	return stats, nil
}

func (r *postgresRepository) RecentActivity(ctx context.Context, scope model.Scope, limit int) ([]model.Activity, error) {
	var where utils.WhereBuilder
	if scope.OwnerID != nil {
		where.Add("s.uploaded_by = ?", *scope.OwnerID)
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.form_type, s.original_name, s.created_at,
		       u.id, u.username, u.email, u.role,
		       r.id, r.title, r.status
		FROM uploads s
		LEFT JOIN users u ON u.id = s.uploaded_by
		LEFT JOIN releases r ON r.id = s.release_id
		%s
		ORDER BY s.created_at DESC
		LIMIT $%d`, where.Clause(), where.Next())

	rows, err := r.db.Query(ctx, query, append(where.Args(), limit)...)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()

	activities := make([]model.Activity, 0, limit)
	for rows.Next() {
		var (
			a                     model.Activity
			userID                *uuid.UUID
			username, email, role *string
			releaseID             *uuid.UUID
			title, status         *string
		)
		err := rows.Scan(
			&a.ID, &a.FormType, &a.FileName, &a.CreatedAt,
			&userID, &username, &email, &role,
			&releaseID, &title, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		if userID != nil {
			a.Uploader = &model.UserRef{ID: *userID, Username: deref(username), Email: deref(email), Role: deref(role)}
		}
		if releaseID != nil {
			a.Release = &model.ReleaseBrief{ID: *releaseID, Title: deref(title), Status: deref(status)}
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return activities, nil
}

func (r *postgresRepository) RecentReleases(ctx context.Context, scope model.Scope, limit int) ([]model.RecentRelease, error) {
	var where utils.WhereBuilder
	if scope.OwnerID != nil {
		where.Add("r.created_by = ?", *scope.OwnerID)
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.title, r.status, r.cover_thumbnail_url, r.created_at,
		       a.id, a.name,
		       l.id, l.name,
		       u.id, u.username, u.email, u.role
		FROM releases r
		LEFT JOIN artists a ON a.id = r.artist_id
		LEFT JOIN labels l ON l.id = r.label_id
		LEFT JOIN users u ON u.id = r.created_by
		%s
		ORDER BY r.created_at DESC
		LIMIT $%d`, where.Clause(), where.Next())

	rows, err := r.db.Query(ctx, query, append(where.Args(), limit)...)
	if err != nil {
		return nil, fmt.Errorf("recent releases: %w", err)
	}
	defer rows.Close()

	releases := make([]model.RecentRelease, 0, limit)
	for rows.Next() {
		var (
			rel                   model.RecentRelease
			artistID, labelID     *uuid.UUID
			artistName, labelName *string
			userID                *uuid.UUID
			username, email, role *string
		)
		err := rows.Scan(
			&rel.ID, &rel.Title, &rel.Status, &rel.CoverThumbnailURL, &rel.CreatedAt,
			&artistID, &artistName,
			&labelID, &labelName,
			&userID, &username, &email, &role,
		)
		if err != nil {
			return nil, fmt.Errorf("scan recent release: %w", err)
		}
		if artistID != nil {
			rel.Artist = &model.NamedRef{ID: *artistID, Name: deref(artistName)}
		}
		if labelID != nil {
			rel.Label = &model.NamedRef{ID: *labelID, Name: deref(labelName)}
		}
		if userID != nil {
			rel.Creator = &model.UserRef{ID: *userID, Username: deref(username), Email: deref(email), Role: deref(role)}
		}
		releases = append(releases, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return releases, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
