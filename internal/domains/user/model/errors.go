package model

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("account is deactivated")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
	ErrRoleNotAllowed     = errors.New("role cannot be self-assigned at registration")
)
