package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/domains/artist/model"
	"labelhub-backend/internal/domains/artist/service"
	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/logger"
)

// ArtistHandler xử lý /artist endpoints
type ArtistHandler struct {
	service service.Service
}

func NewArtistHandler(service service.Service) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// List handles GET /artist?search=&page=&limit=
func (h *ArtistHandler) List(c *gin.Context) {
	page := utils.ParsePagination(c)

	artists, total, err := h.service.List(c.Request.Context(), model.ListArtistsRequest{
		Search: c.Query("search"),
		Page:   page.Page,
		Limit:  page.Limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "", artists, response.NewPagination(page.Page, page.Limit, total))
}

// Get handles GET /artist/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid artist ID")
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", a)
}

// Create handles POST /artist
func (h *ArtistHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Artist created successfully", a)
}

// Update handles PUT /artist/:id
func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid artist ID")
		return
	}

	var req model.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Artist updated successfully", a)
}

// Delete handles DELETE /artist/:id
func (h *ArtistHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid artist ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Artist deleted successfully", nil)
}

func (h *ArtistHandler) handleError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.ValidationFailed(c, err)
	case errors.Is(err, model.ErrArtistAlreadyExists),
		errors.Is(err, model.ErrArtistInUse):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrArtistNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("artist handler: "+c.FullPath(), err)
		response.InternalServerError(c)
	}
}
