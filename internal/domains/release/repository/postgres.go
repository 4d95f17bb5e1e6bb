package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/database"
)

const selectRelease = `
	SELECT r.id, r.title, r.version, r.upc, r.artist_id, r.label_id, r.genre, r.release_date,
	       r.description, r.cover_art_url, r.cover_thumbnail_url, r.audio_file_url, r.status,
	       r.approved_at, r.approved_by, r.created_by, r.metadata, r.created_at, r.updated_at,
	       a.name, a.bio, l.name, l.description
	FROM releases r
	LEFT JOIN artists a ON a.id = r.artist_id
	LEFT JOIN labels l ON l.id = r.label_id`

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func scanRelease(row pgx.Row) (*model.Release, error) {
	var (
		rel       model.Release
		meta      []byte
		artist    *string
		artistBio *string
		label     *string
		labelDesc *string
	)
	err := row.Scan(
		&rel.ID,
		&rel.Title,
		&rel.Version,
		&rel.UPC,
		&rel.ArtistID,
		&rel.LabelID,
		&rel.Genre,
		&rel.ReleaseDate,
		&rel.Description,
		&rel.CoverArtURL,
		&rel.CoverThumbnailURL,
		&rel.AudioFileURL,
		&rel.Status,
		&rel.ApprovedAt,
		&rel.ApprovedBy,
		&rel.CreatedBy,
		&meta,
		&rel.CreatedAt,
		&rel.UpdatedAt,
		&artist,
		&artistBio,
		&label,
		&labelDesc,
	)
	if err != nil {
		return nil, err
	}

	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &rel.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	if rel.Metadata.Tags == nil {
		rel.Metadata.Tags = []string{}
	}
	if artist != nil {
		rel.Artist = &model.ArtistRef{ID: rel.ArtistID, Name: *artist, Bio: artistBio}
	}
	if label != nil && rel.LabelID != nil {
		rel.Label = &model.LabelRef{ID: *rel.LabelID, Name: *label}
		if labelDesc != nil {
			rel.Label.Description = *labelDesc
		}
	}
	return &rel, nil
}

func encodeMetadata(m model.Metadata) ([]byte, error) {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return json.Marshal(m)
}

// translate map lỗi constraint sang domain error
func translate(err error, op string) error {
	if constraint, ok := database.UniqueConstraint(err); ok && constraint == "releases_upc_key" {
		return model.ErrUPCAlreadyExists
	}
	if database.IsForeignKeyViolation(err) {
		return model.ErrInvalidReference
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ========================================
// CREATE
// ========================================

func (r *postgresRepository) Create(ctx context.Context, rel *model.Release) error {
	return create(ctx, r.db, rel)
}

func (r *postgresRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, rel *model.Release) error {
	return create(ctx, tx, rel)
}

func create(ctx context.Context, db database.DBTX, rel *model.Release) error {
	meta, err := encodeMetadata(rel.Metadata)
	if err != nil {
		return err
	}
	if rel.Status == "" {
		rel.Status = model.StatusPending
	}

	query := `
		INSERT INTO releases (
			title, version, upc, artist_id, label_id, genre, release_date, description,
			cover_art_url, cover_thumbnail_url, audio_file_url, status, created_by, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err = db.QueryRow(ctx, query,
		rel.Title,
		rel.Version,
		rel.UPC,
		rel.ArtistID,
		rel.LabelID,
		rel.Genre,
		rel.ReleaseDate,
		rel.Description,
		rel.CoverArtURL,
		rel.CoverThumbnailURL,
		rel.AudioFileURL,
		rel.Status,
		rel.CreatedBy,
		meta,
	).Scan(&rel.ID, &rel.CreatedAt, &rel.UpdatedAt)
	if err != nil {
		return translate(err, "insert release")
	}
	return nil
}

// ========================================
// READ
// ========================================

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return findByID(ctx, r.db, id)
}

func findByID(ctx context.Context, db database.DBTX, id uuid.UUID) (*model.Release, error) {
	rel, err := scanRelease(db.QueryRow(ctx, selectRelease+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReleaseNotFound
		}
		return nil, fmt.Errorf("find release: %w", err)
	}
	return rel, nil
}

func (r *postgresRepository) FindByUPC(ctx context.Context, upc string) (*model.Release, error) {
	rel, err := scanRelease(r.db.QueryRow(ctx, selectRelease+` WHERE r.upc = $1`, strings.TrimSpace(upc)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReleaseNotFound
		}
		return nil, fmt.Errorf("find release by upc: %w", err)
	}
	return rel, nil
}

func buildFilter(req model.ListReleasesRequest) *utils.WhereBuilder {
	var where utils.WhereBuilder
	if req.Status != "" {
		where.Add("r.status = ?", req.Status)
	}
	if req.ArtistID != nil {
		where.Add("r.artist_id = ?", *req.ArtistID)
	}
	if req.LabelID != nil {
		where.Add("r.label_id = ?", *req.LabelID)
	}
	if req.CreatedBy != nil {
		where.Add("r.created_by = ?", *req.CreatedBy)
	}
	if s := strings.TrimSpace(req.Search); s != "" {
		where.Add("(r.title ILIKE ? OR r.upc ILIKE ?)", utils.ContainsPattern(s))
	}
	return &where
}

func (r *postgresRepository) List(ctx context.Context, req model.ListReleasesRequest) ([]model.Release, int64, error) {
	where := buildFilter(req)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM releases r`+where.Clause(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count releases: %w", err)
	}

	page := utils.NormalizePage(req.Page, req.Limit)
	next := where.Next()
	query := fmt.Sprintf(`%s%s ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d`,
		selectRelease, where.Clause(), next, next+1)

	releases, err := r.query(ctx, query, append(where.Args(), page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	return releases, total, nil
}

func (r *postgresRepository) ListAll(ctx context.Context, req model.ListReleasesRequest, limit int) ([]model.Release, error) {
	where := buildFilter(req)
	query := fmt.Sprintf(`%s%s ORDER BY r.created_at DESC LIMIT $%d`, selectRelease, where.Clause(), where.Next())
	return r.query(ctx, query, append(where.Args(), limit)...)
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...any) ([]model.Release, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query releases: %w", err)
	}
	defer rows.Close()

	releases := make([]model.Release, 0)
	for rows.Next() {
		rel, err := scanRelease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan release: %w", err)
		}
		releases = append(releases, *rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return releases, nil
}

// ========================================
// UPDATE / DELETE
// ========================================

func (r *postgresRepository) Update(ctx context.Context, rel *model.Release) error {
	meta, err := encodeMetadata(rel.Metadata)
	if err != nil {
		return err
	}

	query := `
		UPDATE releases
		SET title = $2, version = $3, upc = $4, artist_id = $5, label_id = $6, genre = $7,
		    release_date = $8, description = $9, cover_art_url = $10, cover_thumbnail_url = $11,
		    audio_file_url = $12, metadata = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRow(ctx, query,
		rel.ID,
		rel.Title,
		rel.Version,
		rel.UPC,
		rel.ArtistID,
		rel.LabelID,
		rel.Genre,
		rel.ReleaseDate,
		rel.Description,
		rel.CoverArtURL,
		rel.CoverThumbnailURL,
		rel.AudioFileURL,
		meta,
	).Scan(&rel.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrReleaseNotFound
		}
		return translate(err, "update release")
	}
	return nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, approvedBy *uuid.UUID) (*model.Release, error) {
	return updateStatus(ctx, r.db, id, status, approvedBy)
}

func (r *postgresRepository) UpdateStatusWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.Status, approvedBy *uuid.UUID) (*model.Release, error) {
	return updateStatus(ctx, tx, id, status, approvedBy)
}

func updateStatus(ctx context.Context, db database.DBTX, id uuid.UUID, status model.Status, approvedBy *uuid.UUID) (*model.Release, error) {
	query := `
		UPDATE releases
		SET status      = $2,
		    approved_by = COALESCE($3::uuid, approved_by),
		    approved_at = CASE WHEN $3::uuid IS NULL THEN approved_at ELSE NOW() END,
		    updated_at  = NOW()
		WHERE id = $1
	`
	tag, err := db.Exec(ctx, query, id, status, approvedBy)
	if err != nil {
		return nil, fmt.Errorf("update release status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrReleaseNotFound
	}
	return findByID(ctx, db, id)
}

// Delete: uploads.release_id là ON DELETE SET NULL
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM releases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete release: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReleaseNotFound
	}
	return nil
}
