package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/domains/release/repository"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/pkg/logger"
)

type releaseService struct {
	repo      repository.Repository
	media     storage.Media
	refresher StatsRefresher
}

func NewReleaseService(repo repository.Repository, media storage.Media, refresher StatsRefresher) Service {
	return &releaseService{
		repo:      repo,
		media:     media,
		refresher: refresher,
	}
}

// ========================================
// CREATE
// ========================================

func (s *releaseService) Create(ctx context.Context, actorID uuid.UUID, req model.CreateReleaseRequest, files model.ReleaseFiles) (*model.Release, error) {
	// STEP 1: Validate
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// STEP 2: UPC unique (unique index vẫn là chốt chặn cuối cùng)
	if err := s.ensureUPCAvailable(ctx, req.UPC, uuid.Nil); err != nil {
		return nil, err
	}

	// STEP 3: Build entity
	artistID, _ := uuid.Parse(req.ArtistID)
	rel := &model.Release{
		Title:       req.Title,
		Version:     optional(req.Version),
		UPC:         &req.UPC,
		ArtistID:    artistID,
		Genre:       &req.Genre,
		Description: optional(req.Description),
		Status:      model.StatusPending,
		CreatedBy:   &actorID,
		Metadata:    req.Metadata,
	}
	if req.LabelID != "" {
		labelID, _ := uuid.Parse(req.LabelID)
		rel.LabelID = &labelID
	}
	date, err := model.ParseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}
	rel.ReleaseDate = date

	// STEP 4: Upload files
	keys, err := s.attachFiles(ctx, actorID, rel, files)
	if err != nil {
		return nil, err
	}

	// STEP 5: Persist; insert fail (FK, UPC race) -> xóa file vừa upload
	if err := s.repo.Create(ctx, rel); err != nil {
		s.cleanup(ctx, keys)
		return nil, err
	}

	logger.Info("release created", map[string]interface{}{
		"release_id": rel.ID,
		"upc":        req.UPC,
		"created_by": actorID,
	})
	s.refresher.RequestRefresh(ctx, "release_created")

	return s.reload(ctx, rel)
}

// ========================================
// READ
// ========================================

func (s *releaseService) Get(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *releaseService) List(ctx context.Context, req model.ListReleasesRequest) ([]model.Release, int64, error) {
	if req.Status != "" && !model.Status(req.Status).IsValid() {
		return nil, 0, model.ErrInvalidStatus
	}
	releases, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("list releases: %w", err)
	}
	return releases, total, nil
}

// ========================================
// UPDATE
// ========================================

func (s *releaseService) Update(ctx context.Context, actorID, id uuid.UUID, req model.UpdateReleaseRequest, files model.ReleaseFiles) (*model.Release, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UPC != nil && (rel.UPC == nil || *rel.UPC != *req.UPC) {
		if err := s.ensureUPCAvailable(ctx, *req.UPC, id); err != nil {
			return nil, err
		}
		rel.UPC = req.UPC
	}
	if req.Title != nil {
		rel.Title = *req.Title
	}
	if req.Version != nil {
		rel.Version = optional(*req.Version)
	}
	if req.ArtistID != nil {
		rel.ArtistID, _ = uuid.Parse(*req.ArtistID)
	}
	if req.LabelID != nil {
		if *req.LabelID == "" {
			rel.LabelID = nil
		} else {
			labelID, _ := uuid.Parse(*req.LabelID)
			rel.LabelID = &labelID
		}
	}
	if req.Genre != nil {
		rel.Genre = req.Genre
	}
	if req.ReleaseDate != nil {
		if rel.ReleaseDate, err = model.ParseDate(*req.ReleaseDate); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		rel.Description = optional(*req.Description)
	}
	if req.Metadata != nil {
		rel.Metadata = *req.Metadata
	}

	keys, err := s.attachFiles(ctx, actorID, rel, files)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, rel); err != nil {
		s.cleanup(ctx, keys)
		return nil, err
	}
	return s.reload(ctx, rel)
}

func (s *releaseService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, status model.Status) (*model.Release, error) {
	if !status.IsValid() {
		return nil, model.ErrInvalidStatus
	}

	var approvedBy *uuid.UUID
	if status == model.StatusApproved {
		approvedBy = &actorID
	}

	rel, err := s.repo.UpdateStatus(ctx, id, status, approvedBy)
	if err != nil {
		return nil, err
	}

	logger.Info("release status updated", map[string]interface{}{
		"release_id": id,
		"status":     status,
		"actor":      actorID,
	})
	s.refresher.RequestRefresh(ctx, "status_changed")

	return rel, nil
}

func (s *releaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.refresher.RequestRefresh(ctx, "release_deleted")
	return nil
}

// ========================================
// HELPERS
// ========================================

func (s *releaseService) ensureUPCAvailable(ctx context.Context, upc string, excludeID uuid.UUID) error {
	existing, err := s.repo.FindByUPC(ctx, upc)
	switch {
	case errors.Is(err, model.ErrReleaseNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check upc: %w", err)
	case existing.ID != excludeID:
		return model.ErrUPCAlreadyExists
	}
	return nil
}

// attachFiles upload coverArt (kèm thumbnail) và audioFile nếu có.
// Trả về object keys đã ghi để dọn khi bước persist fail.
func (s *releaseService) attachFiles(ctx context.Context, owner uuid.UUID, rel *model.Release, files model.ReleaseFiles) ([]string, error) {
	var keys []string

	if files.Cover != nil {
		stored, err := s.media.SaveCover(ctx, owner, files.Cover)
		if err != nil {
			return nil, err
		}
		keys = append(keys, stored.Keys()...)
		rel.CoverArtURL = &stored.URL
		if stored.ThumbnailURL != "" {
			rel.CoverThumbnailURL = &stored.ThumbnailURL
		}
	}
	if files.Audio != nil {
		stored, err := s.media.Save(ctx, owner, files.Audio)
		if err != nil {
			s.cleanup(ctx, keys)
			return nil, err
		}
		keys = append(keys, stored.Keys()...)
		rel.AudioFileURL = &stored.URL
	}
	return keys, nil
}

func (s *releaseService) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.media.Remove(ctx, key); err != nil {
			logger.Error("remove orphaned object "+key, err)
		}
	}
}

// reload đọc lại release kèm artist/label; lỗi đọc lại không làm hỏng kết quả ghi
func (s *releaseService) reload(ctx context.Context, rel *model.Release) (*model.Release, error) {
	full, err := s.repo.FindByID(ctx, rel.ID)
	if err != nil {
		logger.Error("reload release", err)
		return rel, nil
	}
	return full, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
