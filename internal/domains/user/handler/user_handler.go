package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/domains/user/model"
	"labelhub-backend/internal/domains/user/service"
	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/logger"
)

// UserHandler xử lý /auth và /user endpoints
type UserHandler struct {
	service service.Service
}

func NewUserHandler(service service.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register xử lý POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/user/"+res.User.ID.String())
	response.Success(c, http.StatusCreated, "User registered successfully", res)
}

// Login xử lý POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", res)
}

// GetProfile xử lý GET /auth/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", profile)
}

// UpdateProfile xử lý PUT /auth/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.UpdateProfileRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListUsers xử lý GET /user?page=&limit=&role=&search=
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := utils.ParsePagination(c)

	users, total, err := h.service.ListUsers(c.Request.Context(), model.ListUsersRequest{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Page:   page.Page,
		Limit:  page.Limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "", users, response.NewPagination(page.Page, page.Limit, total))
}

// CreateUser xử lý POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", u)
}

// GetUser xử lý GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", u)
}

// UpdateUser xử lý PUT /user/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req model.UpdateUserRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	u, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", u)
}

// ChangePassword xử lý PATCH /user/:id/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req model.ChangePasswordRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}

// Deactivate xử lý PATCH /user/:id/deactivate
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	u, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User deactivated successfully", u)
}

// DeleteUser xử lý DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

// ========================================
// HELPERS
// ========================================

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.ValidationFailed(c, err)

	// 400 Bad Request
	case errors.Is(err, model.ErrUserAlreadyExists),
		errors.Is(err, model.ErrRoleNotAllowed),
		errors.Is(err, model.ErrCannotDeleteSelf):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)

	// 401 Unauthorized
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrUserInactive):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)

	// 404 Not Found
	case errors.Is(err, model.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)

	default:
		logger.Error("user handler: "+c.FullPath(), err)
		response.InternalServerError(c)
	}
}

func (h *UserHandler) bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return err
	}
	return nil
}
