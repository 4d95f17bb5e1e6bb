package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/infrastructure/storage"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) release(args mock.Arguments) (*model.Release, error) {
	if r := args.Get(0); r != nil {
		return r.(*model.Release), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, r *model.Release) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = uuid.New()
		r.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return m.release(m.Called(ctx, id))
}

func (m *mockRepo) FindByUPC(ctx context.Context, upc string) (*model.Release, error) {
	return m.release(m.Called(ctx, upc))
}

func (m *mockRepo) List(ctx context.Context, req model.ListReleasesRequest) ([]model.Release, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]model.Release), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) ListAll(ctx context.Context, req model.ListReleasesRequest, limit int) ([]model.Release, error) {
	args := m.Called(ctx, req, limit)
	return args.Get(0).([]model.Release), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, r *model.Release) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, approvedBy *uuid.UUID) (*model.Release, error) {
	return m.release(m.Called(ctx, id, status, approvedBy))
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) CreateWithTx(ctx context.Context, tx pgx.Tx, r *model.Release) error {
	return m.Called(ctx, tx, r).Error(0)
}

func (m *mockRepo) UpdateStatusWithTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.Status, approvedBy *uuid.UUID) (*model.Release, error) {
	return m.release(m.Called(ctx, tx, id, status, approvedBy))
}

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

type recordingRefresher struct {
	reasons []string
}

func (r *recordingRefresher) RequestRefresh(_ context.Context, reason string) {
	r.reasons = append(r.reasons, reason)
}
