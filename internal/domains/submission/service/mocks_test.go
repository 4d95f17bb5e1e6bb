package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	artistmodel "labelhub-backend/internal/domains/artist/model"
	releasemodel "labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/domains/submission/model"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/pkg/database"
)

// ---- submission repository ----

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateWithTx(ctx context.Context, tx pgx.Tx, s *model.Submission) error {
	args := m.Called(ctx, tx, s)
	if args.Error(0) == nil {
		s.ID = uuid.New()
		s.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*model.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, req model.ListSubmissionsRequest) ([]model.Submission, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]model.Submission), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) MarkReviewedWithTx(ctx context.Context, tx pgx.Tx, releaseID, reviewer uuid.UUID, notes *string) (int64, error) {
	args := m.Called(ctx, tx, releaseID, reviewer, notes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) Statistics(ctx context.Context, since time.Time) (*model.Statistics, error) {
	args := m.Called(ctx, since)
	if s := args.Get(0); s != nil {
		return s.(*model.Statistics), args.Error(1)
	}
	return nil, args.Error(1)
}

// ---- release repository ----

type mockReleaseRepo struct {
	mock.Mock
}

func (m *mockReleaseRepo) release(args mock.Arguments) (*releasemodel.Release, error) {
	if r := args.Get(0); r != nil {
		return r.(*releasemodel.Release), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReleaseRepo) Create(ctx context.Context, r *releasemodel.Release) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReleaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*releasemodel.Release, error) {
	return m.release(m.Called(ctx, id))
}

func (m *mockReleaseRepo) FindByUPC(ctx context.Context, upc string) (*releasemodel.Release, error) {
	return m.release(m.Called(ctx, upc))
}

func (m *mockReleaseRepo) List(ctx context.Context, req releasemodel.ListReleasesRequest) ([]releasemodel.Release, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]releasemodel.Release), args.Get(1).(int64), args.Error(2)
}

func (m *mockReleaseRepo) ListAll(ctx context.Context, req releasemodel.ListReleasesRequest, limit int) ([]releasemodel.Release, error) {
	args := m.Called(ctx, req, limit)
	return args.Get(0).([]releasemodel.Release), args.Error(1)
}

func (m *mockReleaseRepo) Update(ctx context.Context, r *releasemodel.Release) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReleaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status releasemodel.Status, approvedBy *uuid.UUID) (*releasemodel.Release, error) {
	return m.release(m.Called(ctx, id, status, approvedBy))
}

func (m *mockReleaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReleaseRepo) CreateWithTx(ctx context.Context, tx pgx.Tx, r *releasemodel.Release) error {
	args := m.Called(ctx, tx, r)
	if args.Error(0) == nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockReleaseRepo) UpdateStatusWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status releasemodel.Status, approvedBy *uuid.UUID) (*releasemodel.Release, error) {
	return m.release(m.Called(ctx, tx, id, status, approvedBy))
}

// ---- artist repository ----

type mockArtistRepo struct {
	mock.Mock
}

func (m *mockArtistRepo) Create(ctx context.Context, a *artistmodel.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockArtistRepo) FindByID(ctx context.Context, id uuid.UUID) (*artistmodel.Artist, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*artistmodel.Artist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArtistRepo) List(ctx context.Context, req artistmodel.ListArtistsRequest) ([]artistmodel.Artist, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]artistmodel.Artist), args.Get(1).(int64), args.Error(2)
}

func (m *mockArtistRepo) Search(ctx context.Context, term string, limit int) ([]artistmodel.Artist, error) {
	args := m.Called(ctx, term, limit)
	return args.Get(0).([]artistmodel.Artist), args.Error(1)
}

func (m *mockArtistRepo) Update(ctx context.Context, a *artistmodel.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockArtistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockArtistRepo) UpsertByNameWithTx(ctx context.Context, tx pgx.Tx, name string, createdBy uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, tx, name, createdBy)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// ---- infrastructure ----

type mockMedia struct {
	mock.Mock
}

func (m *mockMedia) Save(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*storage.StoredFile, error) {
	args := m.Called(ctx, owner, fh)
	if f := args.Get(0); f != nil {
		return f.(*storage.StoredFile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMedia) SaveCover(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*storage.StoredFile, error) {
	args := m.Called(ctx, owner, fh)
	if f := args.Get(0); f != nil {
		return f.(*storage.StoredFile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMedia) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// inlineTx chạy fn trực tiếp với tx nil; repositories đều là mock
type inlineTx struct {
	calls int
}

func (t *inlineTx) WithinTx(_ context.Context, fn database.TxFunc) error {
	t.calls++
	return fn(nil)
}

type recordingRefresher struct {
	reasons []string
}

func (r *recordingRefresher) RequestRefresh(_ context.Context, reason string) {
	r.reasons = append(r.reasons, reason)
}
