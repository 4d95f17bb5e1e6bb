package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/label/model"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/database"
)

const labelColumns = `id, name, description, contact_email, website, created_by, created_at, updated_at`

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func scanLabel(row pgx.Row) (*model.Label, error) {
	var l model.Label
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.ContactEmail,
		&l.Website,
		&l.CreatedBy,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *postgresRepository) Create(ctx context.Context, l *model.Label) error {
	query := `
		INSERT INTO labels (name, description, contact_email, website, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, l.Name, l.Description, l.ContactEmail, l.Website, l.CreatedBy).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if _, ok := database.UniqueConstraint(err); ok {
			return model.ErrLabelAlreadyExists
		}
		return fmt.Errorf("insert label: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	l, err := scanLabel(r.db.QueryRow(ctx, `SELECT `+labelColumns+` FROM labels WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLabelNotFound
		}
		return nil, fmt.Errorf("find label: %w", err)
	}
	return l, nil
}

// List sắp xếp theo name
func (r *postgresRepository) List(ctx context.Context, req model.ListLabelsRequest) ([]model.Label, int64, error) {
	var where utils.WhereBuilder
	if s := strings.TrimSpace(req.Search); s != "" {
		where.Add("name ILIKE ?", utils.ContainsPattern(s))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM labels`+where.Clause(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count labels: %w", err)
	}

	page := utils.NormalizePage(req.Page, req.Limit)
	next := where.Next()
	query := fmt.Sprintf(`SELECT %s FROM labels%s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		labelColumns, where.Clause(), next, next+1)

	labels, err := r.query(ctx, query, append(where.Args(), page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	return labels, total, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string, limit int) ([]model.Label, error) {
	var where utils.WhereBuilder
	if s := strings.TrimSpace(term); s != "" {
		where.Add("name ILIKE ?", utils.ContainsPattern(s))
	}
	query := fmt.Sprintf(`SELECT %s FROM labels%s ORDER BY name ASC LIMIT $%d`,
		labelColumns, where.Clause(), where.Next())

	return r.query(ctx, query, append(where.Args(), limit)...)
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...any) ([]model.Label, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query labels: %w", err)
	}
	defer rows.Close()

	labels := make([]model.Label, 0)
	for rows.Next() {
		l, err := scanLabel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan label: %w", err)
		}
		labels = append(labels, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return labels, nil
}

func (r *postgresRepository) Update(ctx context.Context, l *model.Label) error {
	query := `
		UPDATE labels
		SET name = $2, description = $3, contact_email = $4, website = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, l.ID, l.Name, l.Description, l.ContactEmail, l.Website).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrLabelNotFound
		}
		if _, ok := database.UniqueConstraint(err); ok {
			return model.ErrLabelAlreadyExists
		}
		return fmt.Errorf("update label: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		// Release được tạo giữa CountReleases và DELETE
		if database.IsForeignKeyViolation(err) {
			return model.ErrLabelInUse
		}
		return fmt.Errorf("delete label: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLabelNotFound
	}
	return nil
}

func (r *postgresRepository) CountReleases(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM releases WHERE label_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count label releases: %w", err)
	}
	return n, nil
}
