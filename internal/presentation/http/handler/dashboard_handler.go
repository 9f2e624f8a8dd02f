package handler

import (
	"net/http"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/application/service"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard and health endpoints
type DashboardHandler struct {
	reportService *service.ReportService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reportService *service.ReportService) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// GetStats handles GET /dashboard. Every authenticated user may view it;
// the capability flags tell the frontend which sections to render.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	role := GetUserRole(c)
	response.OK(c, "Dashboard retrieved", gin.H{
		"stats":        stats,
		"capabilities": role.Capabilities(),
	})
}

// HealthCheck handles GET /health-check
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
