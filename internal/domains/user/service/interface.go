package service

import (
	"context"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/user/model"
)

// Service định nghĩa business logic cho auth và quản lý user
type Service interface {
	// ========================================
	// AUTHENTICATION
	// ========================================

	// Register tạo tài khoản artist và trả về access token.
	// Errors: ErrUserAlreadyExists, ErrRoleNotAllowed, validation errors
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)

	// Login kiểm tra password và trạng thái active.
	// Errors: ErrInvalidCredentials, ErrUserInactive
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.UserResponse, error)

	// ========================================
	// ADMIN
	// ========================================

	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error)
	ListUsers(ctx context.Context, req model.ListUsersRequest) ([]*model.UserResponse, int64, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (*model.UserResponse, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req model.ChangePasswordRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) (*model.UserResponse, error)
	// DeleteUser: actorID == id -> ErrCannotDeleteSelf
	DeleteUser(ctx context.Context, actorID, id uuid.UUID) error
}
