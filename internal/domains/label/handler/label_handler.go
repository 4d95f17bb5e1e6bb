package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/domains/label/model"
	"labelhub-backend/internal/domains/label/service"
	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/logger"
)

// LabelHandler xử lý /label endpoints
type LabelHandler struct {
	service service.Service
}

func NewLabelHandler(service service.Service) *LabelHandler {
	return &LabelHandler{service: service}
}

// List handles GET /label?search=&page=&limit=
func (h *LabelHandler) List(c *gin.Context) {
	page := utils.ParsePagination(c)

	labels, total, err := h.service.List(c.Request.Context(), model.ListLabelsRequest{
		Search: c.Query("search"),
		Page:   page.Page,
		Limit:  page.Limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "", labels, response.NewPagination(page.Page, page.Limit, total))
}

// Get handles GET /label/:id
func (h *LabelHandler) Get(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid label ID")
		return
	}

	l, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", l)
}

// Create handles POST /label
func (h *LabelHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	l, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Label created successfully", l)
}

// Update handles PUT /label/:id
func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid label ID")
		return
	}

	var req model.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Label updated successfully", l)
}

// Delete handles DELETE /label/:id
func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid label ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Label deleted successfully", nil)
}

func (h *LabelHandler) handleError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.ValidationFailed(c, err)
	case errors.Is(err, model.ErrLabelAlreadyExists),
		errors.Is(err, model.ErrLabelInUse):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrLabelNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("label handler: "+c.FullPath(), err)
		response.InternalServerError(c)
	}
}
