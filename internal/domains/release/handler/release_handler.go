package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/domains/release/service"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/logger"
)

// ReleaseHandler xử lý /releases endpoints
type ReleaseHandler struct {
	service service.Service
}

func NewReleaseHandler(service service.Service) *ReleaseHandler {
	return &ReleaseHandler{service: service}
}

// List handles GET /releases?page=&limit=&status=&artist_id=&label_id=&search=
func (h *ReleaseHandler) List(c *gin.Context) {
	req, ok := h.parseFilter(c)
	if !ok {
		return
	}
	page := utils.ParsePagination(c)
	req.Page, req.Limit = page.Page, page.Limit

	releases, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "", releases, response.NewPagination(page.Page, page.Limit, total))
}

// Get handles GET /releases/:id
func (h *ReleaseHandler) Get(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid release ID")
		return
	}

	rel, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", rel)
}

// Create handles POST /releases (multipart: coverArt, audioFile)
func (h *ReleaseHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateReleaseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	files, ok := h.readFiles(c)
	if !ok {
		return
	}

	rel, err := h.service.Create(c.Request.Context(), actorID, req, files)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Release created successfully", rel)
}

// Update handles PUT /releases/:id
func (h *ReleaseHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid release ID")
		return
	}

	var req model.UpdateReleaseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	files, ok := h.readFiles(c)
	if !ok {
		return
	}

	rel, err := h.service.Update(c.Request.Context(), actorID, id, req, files)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Release updated successfully", rel)
}

// UpdateStatus handles PATCH /releases/:id/status
func (h *ReleaseHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid release ID")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rel, err := h.service.UpdateStatus(c.Request.Context(), actorID, id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Release status updated successfully", rel)
}

// Delete handles DELETE /releases/:id
func (h *ReleaseHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid release ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Release deleted successfully", nil)
}

// Export handles GET /releases/export (xlsx, cùng filter với List)
func (h *ReleaseHandler) Export(c *gin.Context) {
	req, ok := h.parseFilter(c)
	if !ok {
		return
	}

	f, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("releases_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Error("write releases export", err)
	}
}

// ========================================
// HELPERS
// ========================================

func (h *ReleaseHandler) parseFilter(c *gin.Context) (model.ListReleasesRequest, bool) {
	req := model.ListReleasesRequest{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	var err error
	if req.ArtistID, err = utils.ParseOptionalUUID(c.Query("artist_id")); err != nil {
		response.BadRequest(c, "Invalid artist_id")
		return req, false
	}
	if req.LabelID, err = utils.ParseOptionalUUID(c.Query("label_id")); err != nil {
		response.BadRequest(c, "Invalid label_id")
		return req, false
	}
	return req, true
}

func (h *ReleaseHandler) readFiles(c *gin.Context) (model.ReleaseFiles, bool) {
	var (
		files model.ReleaseFiles
		err   error
	)
	if files.Cover, err = utils.OptionalFormFile(c, "coverArt"); err != nil {
		response.BadRequest(c, "Invalid coverArt file")
		return files, false
	}
	if files.Audio, err = utils.OptionalFormFile(c, "audioFile"); err != nil {
		response.BadRequest(c, "Invalid audioFile file")
		return files, false
	}
	return files, true
}

func (h *ReleaseHandler) handleError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.ValidationFailed(c, err)

	// 400 Bad Request
	case errors.Is(err, model.ErrUPCAlreadyExists),
		errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, model.ErrInvalidReference),
		storage.IsRejected(err):
		response.BadRequest(c, err.Error())

	// 404 Not Found
	case errors.Is(err, model.ErrReleaseNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("release handler: "+c.FullPath(), err)
		response.InternalServerError(c)
	}
}
