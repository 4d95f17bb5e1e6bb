package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/submission/model"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/database"
)

const selectSubmission = `
	SELECT s.id, s.uploaded_by, s.release_id, s.form_type, s.form_data, s.admin_notes,
	       s.reviewed_by, s.reviewed_at, s.created_at,
	       r.title, r.status, r.created_at, a.name,
	       u.username, u.email
	FROM uploads s
	LEFT JOIN releases r ON r.id = s.release_id
	LEFT JOIN artists a ON a.id = r.artist_id
	LEFT JOIN users u ON u.id = s.uploaded_by`

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func scanSubmission(row pgx.Row) (*model.Submission, error) {
	var (
		s              model.Submission
		formData       []byte
		releaseTitle   *string
		releaseStatus  *string
		releaseCreated *time.Time
		artistName     *string
		username       *string
		email          *string
	)
	err := row.Scan(
		&s.ID,
		&s.UploadedBy,
		&s.ReleaseID,
		&s.FormType,
		&formData,
		&s.AdminNotes,
		&s.ReviewedBy,
		&s.ReviewedAt,
		&s.CreatedAt,
		&releaseTitle,
		&releaseStatus,
		&releaseCreated,
		&artistName,
		&username,
		&email,
	)
	if err != nil {
		return nil, err
	}

	if len(formData) > 0 {
		if err := json.Unmarshal(formData, &s.FormData); err != nil {
			return nil, fmt.Errorf("decode form_data: %w", err)
		}
	}
	if s.ReleaseID != nil && releaseTitle != nil {
		s.Release = &model.ReleaseSummary{
			ID:         *s.ReleaseID,
			Title:      *releaseTitle,
			ArtistName: artistName,
		}
		if releaseStatus != nil {
			s.Release.Status = *releaseStatus
		}
		if releaseCreated != nil {
			s.Release.CreatedAt = *releaseCreated
		}
	}
	if username != nil {
		s.Uploader = &model.Uploader{ID: s.UploadedBy, Username: *username}
		if email != nil {
			s.Uploader.Email = *email
		}
	}
	return &s, nil
}

func (r *postgresRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, s *model.Submission) error {
	formData, err := json.Marshal(s.FormData)
	if err != nil {
		return fmt.Errorf("encode form_data: %w", err)
	}

	query := `
		INSERT INTO uploads (uploaded_by, release_id, form_type, form_data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, query, s.UploadedBy, s.ReleaseID, s.FormType, formData).Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	query := selectSubmission + ` WHERE s.id = $1 AND s.form_type = $2`

	s, err := scanSubmission(r.db.QueryRow(ctx, query, id, model.FormTypeReleaseCreation))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return s, nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListSubmissionsRequest) ([]model.Submission, int64, error) {
	var where utils.WhereBuilder
	where.Add("s.form_type = ?", model.FormTypeReleaseCreation)
	if req.UploadedBy != nil {
		where.Add("s.uploaded_by = ?", *req.UploadedBy)
	}
	if req.ReleaseStatus != "" {
		where.Add("r.status = ?", req.ReleaseStatus)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM uploads s LEFT JOIN releases r ON r.id = s.release_id` + where.Clause()
	if err := r.db.QueryRow(ctx, countQuery, where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	page := utils.NormalizePage(req.Page, req.Limit)
	next := where.Next()
	query := fmt.Sprintf(`%s%s ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d`,
		selectSubmission, where.Clause(), next, next+1)

	rows, err := r.db.Query(ctx, query, append(where.Args(), page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]model.Submission, 0, page.Limit)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}
	return submissions, total, nil
}

func (r *postgresRepository) MarkReviewedWithTx(ctx context.Context, tx pgx.Tx, releaseID, reviewer uuid.UUID, notes *string) (int64, error) {
	query := `
		UPDATE uploads
		SET admin_notes = $3, reviewed_by = $2, reviewed_at = NOW()
		WHERE release_id = $1 AND form_type = $4
	`
	tag, err := tx.Exec(ctx, query, releaseID, reviewer, notes, model.FormTypeReleaseCreation)
	if err != nil {
		return 0, fmt.Errorf("mark submissions reviewed: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Statistics(ctx context.Context, since time.Time) (*model.Statistics, error) {
	stats := &model.Statistics{StatusCounts: map[string]int64{}}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM releases GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count releases by status: %w", err)
	}
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		stats.StatusCounts[status] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	query := `
		SELECT
			(SELECT COUNT(*) FROM uploads WHERE form_type = $1 AND created_at >= $2),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM artists)
	`
	err = r.db.QueryRow(ctx, query, model.FormTypeReleaseCreation, since).
		Scan(&stats.RecentSubmissions, &stats.TotalUsers, &stats.TotalArtists)
	if err != nil {
		return nil, fmt.Errorf("submission totals: %w", err)
	}
	return stats, nil
}
