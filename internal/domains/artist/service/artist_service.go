package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/artist/model"
	"labelhub-backend/internal/domains/artist/repository"
	formmodel "labelhub-backend/internal/domains/formvalidation/model"
	"labelhub-backend/pkg/cache"
	"labelhub-backend/pkg/logger"
)

type artistService struct {
	repo  repository.Repository
	cache cache.Cache
}

// cache dùng để xóa dropdown lookups của form-validation sau mỗi lần ghi
func NewArtistService(repo repository.Repository, cache cache.Cache) Service {
	return &artistService{repo: repo, cache: cache}
}

func (s *artistService) Create(ctx context.Context, createdBy uuid.UUID, req model.CreateArtistRequest) (*model.Artist, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &model.Artist{
		Name:        req.Name,
		Bio:         req.Bio,
		Email:       req.Email,
		Phone:       req.Phone,
		SocialLinks: req.SocialLinks,
		CreatedBy:   &createdBy,
	}
	if a.SocialLinks == nil {
		a.SocialLinks = map[string]string{}
	}

	// Duplicate name -> ErrArtistAlreadyExists từ unique index
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.Info("artist created", map[string]interface{}{"artist_id": a.ID, "name": a.Name})
	s.invalidateLookups(ctx)
	return a, nil
}

func (s *artistService) Get(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *artistService) List(ctx context.Context, req model.ListArtistsRequest) ([]model.Artist, int64, error) {
	artists, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("list artists: %w", err)
	}
	return artists, total, nil
}

func (s *artistService) Update(ctx context.Context, id uuid.UUID, req model.UpdateArtistRequest) (*model.Artist, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Bio != nil {
		a.Bio = req.Bio
	}
	if req.Email != nil {
		a.Email = req.Email
	}
	if req.Phone != nil {
		a.Phone = req.Phone
	}
	if req.SocialLinks != nil {
		a.SocialLinks = req.SocialLinks
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.invalidateLookups(ctx)
	return a, nil
}

func (s *artistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLookups(ctx)
	return nil
}

func (s *artistService) Search(ctx context.Context, term string, limit int) ([]model.Artist, error) {
	artists, err := s.repo.Search(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	return artists, nil
}

// invalidateLookups: lỗi cache chỉ log, lookup hết hạn theo TTL
func (s *artistService) invalidateLookups(ctx context.Context) {
	pattern := formmodel.ArtistLookupPrefix + "*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		logger.Error("invalidate lookup cache "+pattern, err)
	}
}
