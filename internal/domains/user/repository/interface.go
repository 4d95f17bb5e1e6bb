package repository

import (
	"context"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/user/model"
)

// Repository định nghĩa data access cho users table
type Repository interface {
	// Create insert user mới; email/username trùng -> model.ErrUserAlreadyExists
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// ExistsByEmailOrUsername bỏ qua user có id = excludeID (dùng khi update)
	ExistsByEmailOrUsername(ctx context.Context, email, username string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, req model.ListUsersRequest) ([]model.User, int64, error)

	// Update ghi lại username, email, role, is_active
	Update(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
