package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/domains/dashboard/service"
	"labelhub-backend/internal/shared"
	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/internal/shared/utils"
	"labelhub-backend/pkg/logger"
)

// DashboardHandler xử lý /api/dashboard endpoints
type DashboardHandler struct {
	service service.Service
}

func NewDashboardHandler(service service.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var (
		stats interface{}
		err   error
	)
	if shared.IsStaff(middleware.GetRole(c)) {
		stats, err = h.service.AdminStats(c.Request.Context())
	} else {
		stats, err = h.service.UserStats(c.Request.Context(), actorID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", stats)
}

// Activity handles GET /api/dashboard/activity?limit=
func (h *DashboardHandler) Activity(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	activities, err := h.service.RecentActivity(c.Request.Context(), actorID, middleware.GetRole(c),
		utils.ParseLimit(c, service.DefaultActivityN))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", activities)
}

// RecentReleases handles GET /api/dashboard/recent-releases?limit=
func (h *DashboardHandler) RecentReleases(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	releases, err := h.service.RecentReleases(c.Request.Context(), actorID, middleware.GetRole(c),
		utils.ParseLimit(c, service.DefaultRecentCount))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", releases)
}

func (h *DashboardHandler) handleError(c *gin.Context, err error) {
	logger.Error("dashboard handler: "+c.FullPath(), err)
	response.InternalServerError(c)
}
