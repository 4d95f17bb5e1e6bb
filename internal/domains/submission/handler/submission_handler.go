package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	releasemodel "labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/domains/submission/model"
	"labelhub-backend/internal/domains/submission/service"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/logger"
)

// SubmissionHandler xử lý /release-form endpoints
type SubmissionHandler struct {
	service service.Service
}

func NewSubmissionHandler(service service.Service) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Create handles POST /release-form/create (multipart: trackFile, coverArt)
func (h *SubmissionHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateSubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var (
		files releasemodel.ReleaseFiles
		err   error
	)
	if files.Audio, err = utils.OptionalFormFile(c, "trackFile"); err != nil {
		response.BadRequest(c, "Invalid trackFile file")
		return
	}
	if files.Cover, err = utils.OptionalFormFile(c, "coverArt"); err != nil {
		response.BadRequest(c, "Invalid coverArt file")
		return
	}

	result, err := h.service.Create(c.Request.Context(), actorID, req, files)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Release created successfully", result)
}

// Get handles GET /release-form/submission/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid submission ID")
		return
	}

	sub, err := h.service.Get(c.Request.Context(), actorID, middleware.GetRole(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", sub)
}

// MySubmissions handles GET /release-form/my-submissions?status=
func (h *SubmissionHandler) MySubmissions(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	page := utils.ParsePagination(c)
	h.list(c, model.ListSubmissionsRequest{
		UploadedBy:    &actorID,
		ReleaseStatus: c.Query("status"),
		Page:          page.Page,
		Limit:         page.Limit,
	})
}

// AllSubmissions handles GET /release-form/all-submissions?status=&user_id=
func (h *SubmissionHandler) AllSubmissions(c *gin.Context) {
	uploadedBy, err := utils.ParseOptionalUUID(c.Query("user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid user_id")
		return
	}

	page := utils.ParsePagination(c)
	h.list(c, model.ListSubmissionsRequest{
		UploadedBy:    uploadedBy,
		ReleaseStatus: c.Query("status"),
		Page:          page.Page,
		Limit:         page.Limit,
	})
}

func (h *SubmissionHandler) list(c *gin.Context, req model.ListSubmissionsRequest) {
	subs, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, "", subs, response.NewPagination(req.Page, req.Limit, total))
}

// UpdateStatus handles PATCH /release-form/submission/:id/status
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid submission ID")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rel, err := h.service.UpdateStatus(c.Request.Context(), actorID, id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Submission status updated successfully", rel)
}

// Statistics handles GET /release-form/statistics
func (h *SubmissionHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", stats)
}

func (h *SubmissionHandler) handleError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.ValidationFailed(c, err)

	// 400 Bad Request
	case errors.Is(err, releasemodel.ErrUPCAlreadyExists),
		errors.Is(err, releasemodel.ErrInvalidStatus),
		errors.Is(err, releasemodel.ErrInvalidReference),
		storage.IsRejected(err):
		response.BadRequest(c, err.Error())

	// 403 Forbidden
	case errors.Is(err, model.ErrAccessDenied):
		response.Forbidden(c, "Access denied")

	// 404 Not Found
	case errors.Is(err, model.ErrSubmissionNotFound),
		errors.Is(err, releasemodel.ErrReleaseNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("submission handler: "+c.FullPath(), err)
		response.InternalServerError(c)
	}
}
