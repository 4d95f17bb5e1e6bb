package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/upload/model"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/database"
)

const selectUpload = `
	SELECT id, COALESCE(original_name, ''), COALESCE(filename, ''), COALESCE(file_path, ''),
	       COALESCE(file_url, ''), COALESCE(mime_type, ''), COALESCE(file_size, 0),
	       uploaded_by, release_id, form_type, created_at
	FROM uploads`

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func scanUpload(row pgx.Row) (*model.Upload, error) {
	var u model.Upload
	err := row.Scan(
		&u.ID,
		&u.OriginalName,
		&u.Filename,
		&u.FilePath,
		&u.FileURL,
		&u.MimeType,
		&u.FileSize,
		&u.UploadedBy,
		&u.ReleaseID,
		&u.FormType,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *model.Upload) error {
	return create(ctx, r.db, u)
}

func (r *postgresRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, u *model.Upload) error {
	return create(ctx, tx, u)
}

func create(ctx context.Context, db database.DBTX, u *model.Upload) error {
	if u.FormType == "" {
		u.FormType = model.FormTypeFileUpload
	}
	query := `
		INSERT INTO uploads (original_name, filename, file_path, file_url, mime_type, file_size, uploaded_by, release_id, form_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := db.QueryRow(ctx, query,
		u.OriginalName,
		u.Filename,
		u.FilePath,
		u.FileURL,
		u.MimeType,
		u.FileSize,
		u.UploadedBy,
		u.ReleaseID,
		u.FormType,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Upload, error) {
	u, err := scanUpload(r.db.QueryRow(ctx, selectUpload+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUploadNotFound
		}
		return nil, fmt.Errorf("find upload: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListUploadsRequest) ([]model.Upload, int64, error) {
	var where utils.WhereBuilder
	where.Add("uploaded_by = ?", req.UploadedBy)
	where.Add("form_type = ?", model.FormTypeFileUpload)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM uploads`+where.Clause(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count uploads: %w", err)
	}

	page := utils.NormalizePage(req.Page, req.Limit)
	next := where.Next()
	query := fmt.Sprintf(`%s%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		selectUpload, where.Clause(), next, next+1)

	rows, err := r.db.Query(ctx, query, append(where.Args(), page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	uploads := make([]model.Upload, 0, page.Limit)
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan upload: %w", err)
		}
		uploads = append(uploads, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}
	return uploads, total, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM uploads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUploadNotFound
	}
	return nil
}
