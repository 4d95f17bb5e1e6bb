package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/domains/formvalidation/model"
	"labelhub-backend/internal/domains/formvalidation/service"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/pkg/logger"
)

// FormValidationHandler xử lý /form-validation endpoints (public)
type FormValidationHandler struct {
	service service.Service
}

func NewFormValidationHandler(service service.Service) *FormValidationHandler {
	return &FormValidationHandler{service: service}
}

// ValidateUPC handles POST /form-validation/validate-upc ({"upc"}) và GET ?upc=
func (h *FormValidationHandler) ValidateUPC(c *gin.Context) {
	var req model.ValidateUPCRequest
	if c.Request.Method == http.MethodGet {
		req.UPC = c.Query("upc")
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	check, err := h.service.ValidateUPC(c.Request.Context(), req.UPC)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, check.Message, check)
}

// Artists handles GET /form-validation/artists?search=
func (h *FormValidationHandler) Artists(c *gin.Context) {
	opts, err := h.service.Artists(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", opts)
}

// Labels handles GET /form-validation/labels?search=
func (h *FormValidationHandler) Labels(c *gin.Context) {
	opts, err := h.service.Labels(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", opts)
}

// Genres handles GET /form-validation/genres
func (h *FormValidationHandler) Genres(c *gin.Context) {
	response.Success(c, http.StatusOK, "", model.Genres)
}

// Languages handles GET /form-validation/languages
func (h *FormValidationHandler) Languages(c *gin.Context) {
	response.Success(c, http.StatusOK, "", model.Languages)
}

func (h *FormValidationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUPCRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("form validation handler: "+c.FullPath(), err)
		response.InternalServerError(c)
	}
}
