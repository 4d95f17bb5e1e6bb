package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"labelhub-backend/internal/domains/upload/model"
	"labelhub-backend/internal/domains/upload/repository"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/internal/shared"
	"labelhub-backend/pkg/database"
	"labelhub-backend/pkg/logger"
)

type uploadService struct {
	repo     repository.Repository
	tx       database.Transactor
	media    storage.Media
	maxFiles int
}

func NewUploadService(repo repository.Repository, tx database.Transactor, media storage.Media, maxFiles int) Service {
	return &uploadService{
		repo:     repo,
		tx:       tx,
		media:    media,
		maxFiles: maxFiles,
	}
}

func (s *uploadService) UploadSingle(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*model.Upload, error) {
	if fh == nil {
		return nil, model.ErrNoFiles
	}

	stored, err := s.media.Save(ctx, owner, fh)
	if err != nil {
		return nil, err
	}

	u := toUpload(owner, stored)
	if err := s.repo.Create(ctx, u); err != nil {
		s.cleanup(ctx, []*storage.StoredFile{stored})
		return nil, err
	}

	logger.Info("file uploaded", map[string]interface{}{
		"upload_id": u.ID,
		"user_id":   owner,
		"mime":      u.MimeType,
		"size":      u.FileSize,
	})
	return u, nil
}

func (s *uploadService) UploadMultiple(ctx context.Context, owner uuid.UUID, files []*multipart.FileHeader) ([]model.Upload, error) {
	if len(files) == 0 {
		return nil, model.ErrNoFiles
	}
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf("%w: maximum %d files", model.ErrTooManyFiles, s.maxFiles)
	}

	// STEP 1: Lưu toàn bộ objects
	stored := make([]*storage.StoredFile, 0, len(files))
	for _, fh := range files {
		sf, err := s.media.Save(ctx, owner, fh)
		if err != nil {
			s.cleanup(ctx, stored)
			return nil, err
		}
		stored = append(stored, sf)
	}

	// STEP 2: Ghi metadata trong một transaction
	uploads := make([]model.Upload, 0, len(stored))
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		for _, sf := range stored {
			u := toUpload(owner, sf)
			if err := s.repo.CreateWithTx(ctx, tx, u); err != nil {
				return err
			}
			uploads = append(uploads, *u)
		}
		return nil
	})
	if err != nil {
		s.cleanup(ctx, stored)
		return nil, err
	}

	logger.Info("files uploaded", map[string]interface{}{
		"user_id": owner,
		"count":   len(uploads),
	})
	return uploads, nil
}

func (s *uploadService) ListMine(ctx context.Context, req model.ListUploadsRequest) ([]model.Upload, int64, error) {
	return s.repo.List(ctx, req)
}

func (s *uploadService) Delete(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u.UploadedBy != actorID && role != shared.RoleAdmin {
		return model.ErrAccessDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *uploadService) cleanup(ctx context.Context, files []*storage.StoredFile) {
	for _, f := range files {
		if err := s.media.Remove(ctx, f.Key); err != nil {
			logger.Error("remove orphaned object "+f.Key, err)
		}
	}
}

func toUpload(owner uuid.UUID, f *storage.StoredFile) *model.Upload {
	return &model.Upload{
		OriginalName: f.OriginalName,
		Filename:     f.Filename,
		FilePath:     f.Key,
		FileURL:      f.URL,
		MimeType:     f.MimeType,
		FileSize:     f.Size,
		UploadedBy:   owner,
		FormType:     model.FormTypeFileUpload,
	}
}
