package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"labelhub-backend/internal/domains/user/model"
	"labelhub-backend/internal/domains/user/repository"
	"labelhub-backend/pkg/logger"
)

// TokenIssuer được implement bởi *jwt.Manager
type TokenIssuer interface {
	GenerateAccessToken(userID, username, role string) (string, error)
	Expiry() time.Duration
}

// userService implement Service
type userService struct {
	repo       repository.Repository
	tokens     TokenIssuer
	bcryptCost int
}

// NewUserService: bcryptCost <= 0 dùng cost 12
func NewUserService(repo repository.Repository, tokens TokenIssuer, bcryptCost int) Service {
	if bcryptCost <= 0 {
		bcryptCost = 12
	}
	return &userService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	// 1. NORMALIZE + VALIDATE
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	// Tài khoản admin/manager chỉ được tạo bởi admin (POST /user)
	if req.Role != model.RoleArtist {
		return nil, model.ErrRoleNotAllowed
	}

	// 2. CHECK DUPLICATE (unique index vẫn là chốt chặn cuối cùng)
	exists, err := s.repo.ExistsByEmailOrUsername(ctx, req.Email, req.Username, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, model.ErrUserAlreadyExists
	}

	// 3. HASH PASSWORD + CREATE
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": u.ID,
		"role":    u.Role,
	})

	return s.authResponse(u)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Không phân biệt "email không tồn tại" và "sai password"
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, model.ErrUserInactive
	}

	// last_login fail không chặn đăng nhập
	if err := s.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Error("update last login failed", err)
	} else {
		now := time.Now()
		u.LastLogin = &now
	}

	return s.authResponse(u)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	return s.GetUser(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.UpdateUser(ctx, userID, model.UpdateUserRequest{
		Username: req.Username,
		Email:    req.Email,
	})
}

// ========================================
// ADMIN
// ========================================

func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmailOrUsername(ctx, req.Email, req.Username, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, model.ErrUserAlreadyExists
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u.ToResponse(), nil
}

func (s *userService) ListUsers(ctx context.Context, req model.ListUsersRequest) ([]*model.UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	out := make([]*model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, total, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.ToResponse(), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		u.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if req.Username != nil || req.Email != nil {
		exists, err := s.repo.ExistsByEmailOrUsername(ctx, u.Email, u.Username, u.ID)
		if err != nil {
			return nil, fmt.Errorf("check user exists: %w", err)
		}
		if exists {
			return nil, model.ErrUserAlreadyExists
		}
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u.ToResponse(), nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req model.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
	inactive := false
	return s.UpdateUser(ctx, id, model.UpdateUserRequest{IsActive: &inactive})
}

func (s *userService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return model.ErrCannotDeleteSelf
	}
	return s.repo.Delete(ctx, id)
}

// ========================================
// HELPERS
// ========================================

func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) authResponse(u *model.User) (*model.AuthResponse, error) {
	token, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Username, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &model.AuthResponse{
		User:      u.ToResponse(),
		Token:     token,
		ExpiresIn: int64(s.tokens.Expiry().Seconds()),
	}, nil
}
