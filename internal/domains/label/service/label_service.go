package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/label/model"
	"labelhub-backend/internal/domains/label/repository"
	formmodel "labelhub-backend/internal/domains/formvalidation/model"
	"labelhub-backend/pkg/cache"
	"labelhub-backend/pkg/logger"
)

type labelService struct {
	repo  repository.Repository
	cache cache.Cache
}

// cache dùng để xóa dropdown lookups của form-validation sau mỗi lần ghi
func NewLabelService(repo repository.Repository, cache cache.Cache) Service {
	return &labelService{repo: repo, cache: cache}
}

func (s *labelService) Create(ctx context.Context, createdBy uuid.UUID, req model.CreateLabelRequest) (*model.Label, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l := &model.Label{
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
		CreatedBy:    &createdBy,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	logger.Info("label created", map[string]interface{}{"label_id": l.ID, "name": l.Name})
	s.invalidateLookups(ctx)
	return l, nil
}

func (s *labelService) Get(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *labelService) List(ctx context.Context, req model.ListLabelsRequest) ([]model.Label, int64, error) {
	labels, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("list labels: %w", err)
	}
	return labels, total, nil
}

func (s *labelService) Update(ctx context.Context, id uuid.UUID, req model.UpdateLabelRequest) (*model.Label, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.ContactEmail != nil {
		l.ContactEmail = req.ContactEmail
	}
	if req.Website != nil {
		l.Website = req.Website
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	s.invalidateLookups(ctx)
	return l, nil
}

func (s *labelService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.CountReleases(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return model.ErrLabelInUse
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLookups(ctx)
	return nil
}

func (s *labelService) Search(ctx context.Context, term string, limit int) ([]model.Label, error) {
	labels, err := s.repo.Search(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search labels: %w", err)
	}
	return labels, nil
}

// invalidateLookups: lỗi cache chỉ log, lookup hết hạn theo TTL
func (s *labelService) invalidateLookups(ctx context.Context) {
	pattern := formmodel.LabelLookupPrefix + "*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		logger.Error("invalidate lookup cache "+pattern, err)
	}
}
