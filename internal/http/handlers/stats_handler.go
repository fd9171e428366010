package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/bulafix-backend/internal/http/handlers/common"
	"github.com/ignatzorin/bulafix-backend/internal/service"
)

// StatsHandler отдаёт агрегаты для главной страницы и страницы прозрачности.
type StatsHandler struct {
	reports *service.ReportService
}

// NewStatsHandler создаёт экземпляр.
func NewStatsHandler(reports *service.ReportService) *StatsHandler {
	return &StatsHandler{reports: reports}
}

// GetStats GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.reports.Stats(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDashboard GET /api/dashboard
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetTransparency GET /api/transparency
func (h *StatsHandler) GetTransparency(c *gin.Context) {
	data, err := h.reports.Transparency(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
