package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/domains/upload/model"
	"labelhub-backend/internal/domains/upload/service"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/logger"
)

// UploadHandler xử lý /uploads endpoints
type UploadHandler struct {
	service service.Service
}

func NewUploadHandler(service service.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

// Single handles POST /uploads/single (multipart: file)
func (h *UploadHandler) Single(c *gin.Context) {
	owner, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	fh, err := utils.OptionalFormFile(c, "file")
	if err != nil {
		response.BadRequest(c, "Invalid file")
		return
	}

	upload, err := h.service.UploadSingle(c.Request.Context(), owner, fh)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "File uploaded successfully", upload)
}

// Multiple handles POST /uploads/multiple (multipart: files)
func (h *UploadHandler) Multiple(c *gin.Context) {
	owner, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, model.ErrNoFiles.Error())
		return
	}

	uploads, err := h.service.UploadMultiple(c.Request.Context(), owner, form.File["files"])
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Files uploaded successfully", uploads)
}

// MyUploads handles GET /uploads/my-uploads?page=&limit=
func (h *UploadHandler) MyUploads(c *gin.Context) {
	owner, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	page := utils.ParsePagination(c)
	uploads, total, err := h.service.ListMine(c.Request.Context(), model.ListUploadsRequest{
		UploadedBy: owner,
		Page:       page.Page,
		Limit:      page.Limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, "", uploads, response.NewPagination(page.Page, page.Limit, total))
}

// Delete handles DELETE /uploads/:id
func (h *UploadHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid upload ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, middleware.GetRole(c), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "File deleted successfully", nil)
}

func (h *UploadHandler) handleError(c *gin.Context, err error) {
	switch {
	// 400 Bad Request
	case errors.Is(err, model.ErrNoFiles),
		errors.Is(err, model.ErrTooManyFiles),
		storage.IsRejected(err):
		response.BadRequest(c, err.Error())

	// 403 Forbidden
	case errors.Is(err, model.ErrAccessDenied):
		response.Forbidden(c, "Access denied")

	// 404 Not Found
	case errors.Is(err, model.ErrUploadNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("upload handler: "+c.FullPath(), err)
		response.InternalServerError(c)
	}
}
