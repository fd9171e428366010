package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SizeCounter отдаёт число записей для health check.
type SizeCounter interface {
	Len() int
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	reports   SizeCounter
	startedAt time.Time
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(reports SizeCounter) *HealthHandler {
	return &HealthHandler{reports: reports, startedAt: time.Now()}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks"`
	Reports   int               `json:"reports"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := map[string]string{"report_store": "healthy"}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Checks:    checks,
		Reports:   h.reports.Len(),
	})
}
