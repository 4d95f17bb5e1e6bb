package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"labelhub-backend/internal/domains/formvalidation/model"
	releasemodel "labelhub-backend/internal/domains/release/model"
	"labelhub-backend/pkg/cache"
	"labelhub-backend/pkg/logger"
)

// lookupTTL: artist/label service xóa lookup cache khi ghi, TTL chỉ là giới hạn trên
const lookupTTL = 30 * time.Second

type formValidationService struct {
	artists  ArtistSearcher
	labels   LabelSearcher
	releases UPCLookup
	cache    cache.Cache
}

func NewFormValidationService(artists ArtistSearcher, labels LabelSearcher, releases UPCLookup, cache cache.Cache) Service {
	return &formValidationService{
		artists:  artists,
		labels:   labels,
		releases: releases,
		cache:    cache,
	}
}

func (s *formValidationService) ValidateUPC(ctx context.Context, upc string) (*model.UPCCheck, error) {
	upc = strings.TrimSpace(upc)
	if upc == "" {
		return nil, model.ErrUPCRequired
	}

	rel, err := s.releases.FindByUPC(ctx, upc)
	switch {
	case errors.Is(err, releasemodel.ErrReleaseNotFound):
		return &model.UPCCheck{Valid: true, Message: "UPC code is available"}, nil
	case err != nil:
		return nil, fmt.Errorf("lookup upc: %w", err)
	}
	return &model.UPCCheck{
		Valid:   false,
		Message: "UPC code already exists for release: " + rel.Title,
	}, nil
}

func (s *formValidationService) Artists(ctx context.Context, search string) ([]model.Option, error) {
	return s.cached(ctx, model.ArtistLookupPrefix, search, func() ([]model.Option, error) {
		artists, err := s.artists.Search(ctx, search, model.LookupLimit)
		if err != nil {
			return nil, err
		}
		opts := make([]model.Option, 0, len(artists))
		for _, a := range artists {
			opts = append(opts, model.Option{ID: a.ID, Name: a.Name})
		}
		return opts, nil
	})
}

func (s *formValidationService) Labels(ctx context.Context, search string) ([]model.Option, error) {
	return s.cached(ctx, model.LabelLookupPrefix, search, func() ([]model.Option, error) {
		labels, err := s.labels.Search(ctx, search, model.LookupLimit)
		if err != nil {
			return nil, err
		}
		opts := make([]model.Option, 0, len(labels))
		for _, l := range labels {
			opts = append(opts, model.Option{ID: l.ID, Name: l.Name})
		}
		return opts, nil
	})
}

// cached: cache-aside theo search term (lowercase); lỗi cache chỉ log
func (s *formValidationService) cached(ctx context.Context, prefix, search string, load func() ([]model.Option, error)) ([]model.Option, error) {
	key := prefix + strings.ToLower(strings.TrimSpace(search))

	var opts []model.Option
	found, err := s.cache.Get(ctx, key, &opts)
	if err != nil {
		logger.Error("read cached lookup "+key, err)
	}
	if found {
		return opts, nil
	}

	opts, err = load()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, opts, lookupTTL); err != nil {
		logger.Error("cache lookup "+key, err)
	}
	return opts, nil
}
