package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/artist/model"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/database"
)

const artistColumns = `id, name, bio, email, phone, social_links, created_by, created_at, updated_at`

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var (
		a     model.Artist
		links []byte
	)
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Bio,
		&a.Email,
		&a.Phone,
		&links,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.SocialLinks = map[string]string{}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &a.SocialLinks); err != nil {
			return nil, fmt.Errorf("decode social_links: %w", err)
		}
	}
	return &a, nil
}

func encodeLinks(links map[string]string) ([]byte, error) {
	if links == nil {
		links = map[string]string{}
	}
	return json.Marshal(links)
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Artist) error {
	links, err := encodeLinks(a.SocialLinks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO artists (name, bio, email, phone, social_links, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query, a.Name, a.Bio, a.Email, a.Phone, links, a.CreatedBy).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if _, ok := database.UniqueConstraint(err); ok {
			return model.ErrArtistAlreadyExists
		}
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	a, err := scanArtist(r.db.QueryRow(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("find artist: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int64, error) {
	var where utils.WhereBuilder
	if s := strings.TrimSpace(req.Search); s != "" {
		where.Add("name ILIKE ?", utils.ContainsPattern(s))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM artists`+where.Clause(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artists: %w", err)
	}

	page := utils.NormalizePage(req.Page, req.Limit)
	next := where.Next()
	query := fmt.Sprintf(`SELECT %s FROM artists%s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		artistColumns, where.Clause(), next, next+1)

	artists, err := r.query(ctx, query, append(where.Args(), page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string, limit int) ([]model.Artist, error) {
	var where utils.WhereBuilder
	if s := strings.TrimSpace(term); s != "" {
		where.Add("name ILIKE ?", utils.ContainsPattern(s))
	}
	query := fmt.Sprintf(`SELECT %s FROM artists%s ORDER BY name ASC LIMIT $%d`,
		artistColumns, where.Clause(), where.Next())

	return r.query(ctx, query, append(where.Args(), limit)...)
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...any) ([]model.Artist, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	artists := make([]model.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return artists, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Artist) error {
	links, err := encodeLinks(a.SocialLinks)
	if err != nil {
		return err
	}

	query := `
		UPDATE artists
		SET name = $2, bio = $3, email = $4, phone = $5, social_links = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRow(ctx, query, a.ID, a.Name, a.Bio, a.Email, a.Phone, links).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrArtistNotFound
		}
		if _, ok := database.UniqueConstraint(err); ok {
			return model.ErrArtistAlreadyExists
		}
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

// Delete: releases.artist_id là ON DELETE RESTRICT nên artist còn release sẽ bị chặn
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return model.ErrArtistInUse
		}
		return fmt.Errorf("delete artist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArtistNotFound
	}
	return nil
}

func (r *postgresRepository) UpsertByNameWithTx(ctx context.Context, tx pgx.Tx, name string, createdBy uuid.UUID) (uuid.UUID, error) {
	// DO UPDATE (no-op) để RETURNING trả về cả row đã tồn tại
	query := `
		INSERT INTO artists (name, created_by)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, strings.TrimSpace(name), createdBy).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("upsert artist: %w", err)
	}
	return id, nil
}
