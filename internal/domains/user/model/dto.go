package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const MinPasswordLength = 6

var roleRule = validation.In(RoleAdmin, RoleManager, RoleArtist).Error("role must be one of: admin, manager, artist")

// RegisterRequest - POST /auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"` // mặc định artist
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, 128).Error("password must be at least 6 characters long"),
		),
		validation.Field(&r.Role, roleRule),
	)
}

// Normalize trim khoảng trắng và lowercase email
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Role == "" {
		r.Role = RoleArtist
	}
}

// LoginRequest - POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// AuthResponse trả về sau register/login
type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"` // seconds
}

// UpdateProfileRequest - PUT /auth/profile; field rỗng = giữ nguyên
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(3, 100)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat.Error("invalid email format")),
	)
}

// CreateUserRequest - POST /user (admin)
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required"), validation.Length(3, 100)),
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, 128).Error("password must be at least 6 characters long"),
		),
		validation.Field(&r.Role, validation.Required.Error("role is required"), roleRule),
	)
}

// UpdateUserRequest - PUT /user/:id (admin). Chỉ username, email, role, is_active được phép sửa.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(3, 100)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Role, validation.NilOrNotEmpty, roleRule),
	)
}

// ChangePasswordRequest - PATCH /user/:id/password
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password,
			validation.Required.Error("password must be at least 6 characters long"),
			validation.Length(MinPasswordLength, 128).Error("password must be at least 6 characters long"),
		),
	)
}

// ListUsersRequest - GET /user?role=&search=&page=&limit=
type ListUsersRequest struct {
	Role   string
	Search string
	Page   int
	Limit  int
}
