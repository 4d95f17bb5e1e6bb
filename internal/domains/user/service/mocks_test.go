package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"labelhub-backend/internal/domains/user/model"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = uuid.New()
		u.CreatedAt = time.Now()
		u.UpdatedAt = u.CreatedAt
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, req model.ListUsersRequest) ([]model.User, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) Update(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
