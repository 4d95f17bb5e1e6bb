package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	artistrepo "labelhub-backend/internal/domains/artist/repository"
	releasemodel "labelhub-backend/internal/domains/release/model"
	releaserepo "labelhub-backend/internal/domains/release/repository"
	"labelhub-backend/internal/domains/submission/model"
	"labelhub-backend/internal/domains/submission/repository"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/internal/shared"
	"labelhub-backend/pkg/database"
	"labelhub-backend/pkg/logger"
)

const statisticsWindow = 30 * 24 * time.Hour

type submissionService struct {
	repo        repository.Repository
	releaseRepo releaserepo.Repository
	artistRepo  artistrepo.Repository
	tx          database.Transactor
	media       storage.Media
	refresher   StatsRefresher
}

func NewSubmissionService(
	repo repository.Repository,
	releaseRepo releaserepo.Repository,
	artistRepo artistrepo.Repository,
	tx database.Transactor,
	media storage.Media,
	refresher StatsRefresher,
) Service {
	return &submissionService{
		repo:        repo,
		releaseRepo: releaseRepo,
		artistRepo:  artistRepo,
		tx:          tx,
		media:       media,
		refresher:   refresher,
	}
}

// ========================================
// CREATE
// ========================================

func (s *submissionService) Create(ctx context.Context, actorID uuid.UUID, req model.CreateSubmissionRequest, files releasemodel.ReleaseFiles) (*model.CreateSubmissionResult, error) {
	// STEP 1: Validate
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	releaseDate, err := releasemodel.ParseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	rel := &releasemodel.Release{
		Title:       req.Title,
		Genre:       &req.Genre,
		ReleaseDate: releaseDate,
		Status:      releasemodel.StatusPending,
		CreatedBy:   &actorID,
		Metadata:    req.Metadata(),
	}
	if req.Version != "" {
		rel.Version = &req.Version
	}
	if req.UPCCode != "" {
		rel.UPC = &req.UPCCode
	}

	// STEP 2: Upload files trước transaction (không giữ connection khi upload)
	uploaded, err := s.uploadFiles(ctx, actorID, rel, files)
	if err != nil {
		return nil, err
	}

	// STEP 3: Artist upsert + release + submission trong một transaction
	sub := &model.Submission{
		UploadedBy: actorID,
		FormType:   model.FormTypeReleaseCreation,
		FormData:   req.FormData(),
	}
	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		artistID, err := s.artistRepo.UpsertByNameWithTx(ctx, tx, req.PrimaryArtist, actorID)
		if err != nil {
			return err
		}
		rel.ArtistID = artistID

		if err := s.releaseRepo.CreateWithTx(ctx, tx, rel); err != nil {
			return err
		}

		sub.ReleaseID = &rel.ID
		return s.repo.CreateWithTx(ctx, tx, sub)
	})
	if err != nil {
		s.cleanup(ctx, uploaded)
		return nil, err
	}

	logger.Info("release form submitted", map[string]interface{}{
		"submission_id": sub.ID,
		"release_id":    rel.ID,
		"user_id":       actorID,
	})
	s.refresher.RequestRefresh(ctx, "release_submitted")

	if full, err := s.releaseRepo.FindByID(ctx, rel.ID); err == nil {
		rel = full
	} else {
		logger.Error("reload submitted release", err)
	}

	return &model.CreateSubmissionResult{Release: rel, SubmissionID: sub.ID}, nil
}

// uploadFiles trả về object keys đã lưu để dọn khi transaction fail
func (s *submissionService) uploadFiles(ctx context.Context, owner uuid.UUID, rel *releasemodel.Release, files releasemodel.ReleaseFiles) ([]string, error) {
	var keys []string

	if files.Audio != nil {
		stored, err := s.media.Save(ctx, owner, files.Audio)
		if err != nil {
			return nil, err
		}
		keys = append(keys, stored.Keys()...)
		rel.AudioFileURL = &stored.URL
	}
	if files.Cover != nil {
		stored, err := s.media.SaveCover(ctx, owner, files.Cover)
		if err != nil {
			s.cleanup(ctx, keys)
			return nil, err
		}
		keys = append(keys, stored.Keys()...)
		rel.CoverArtURL = &stored.URL
		if stored.ThumbnailURL != "" {
			rel.CoverThumbnailURL = &stored.ThumbnailURL
		}
	}
	return keys, nil
}

func (s *submissionService) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.media.Remove(ctx, key); err != nil {
			logger.Error("remove orphaned object "+key, err)
		}
	}
}

// ========================================
// READ
// ========================================

func (s *submissionService) Get(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) (*model.Submission, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.UploadedBy != actorID && role != shared.RoleAdmin {
		return nil, model.ErrAccessDenied
	}
	return sub, nil
}

func (s *submissionService) List(ctx context.Context, req model.ListSubmissionsRequest) ([]model.Submission, int64, error) {
	if req.ReleaseStatus != "" && !releasemodel.Status(req.ReleaseStatus).IsValid() {
		return nil, 0, releasemodel.ErrInvalidStatus
	}
	subs, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return subs, total, nil
}

func (s *submissionService) Statistics(ctx context.Context) (*model.Statistics, error) {
	stats, err := s.repo.Statistics(ctx, time.Now().Add(-statisticsWindow))
	if err != nil {
		return nil, fmt.Errorf("submission statistics: %w", err)
	}
	return stats, nil
}

// ========================================
// REVIEW
// ========================================

func (s *submissionService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req model.UpdateStatusRequest) (*releasemodel.Release, error) {
	if !req.Status.IsValid() {
		return nil, releasemodel.ErrInvalidStatus
	}

	// id là submission id; client cũ gửi release id nên fallback khi không tìm thấy submission
	releaseID := id
	sub, err := s.repo.FindByID(ctx, id)
	switch {
	case err == nil && sub.ReleaseID != nil:
		releaseID = *sub.ReleaseID
	case err != nil && !errors.Is(err, model.ErrSubmissionNotFound):
		return nil, err
	}

	var approvedBy *uuid.UUID
	if req.Status == releasemodel.StatusApproved {
		approvedBy = &actorID
	}

	var rel *releasemodel.Release
	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		if rel, err = s.releaseRepo.UpdateStatusWithTx(ctx, tx, releaseID, req.Status, approvedBy); err != nil {
			return err
		}
		_, err = s.repo.MarkReviewedWithTx(ctx, tx, releaseID, actorID, req.Notes)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("submission reviewed", map[string]interface{}{
		"release_id": releaseID,
		"status":     req.Status,
		"reviewer":   actorID,
	})
	s.refresher.RequestRefresh(ctx, "status_changed")

	return rel, nil
}
