package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/bulafix-backend/internal/content"
	"github.com/ignatzorin/bulafix-backend/internal/dto"
	"github.com/ignatzorin/bulafix-backend/internal/models"
)

// ContentHandler отдаёт статические данные страниц.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// Helplines GET /api/helplines
func (h *ContentHandler) Helplines(c *gin.Context) {
	c.JSON(http.StatusOK, content.Helplines())
}

// Community GET /api/community
func (h *ContentHandler) Community(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CommunityResponse{
		SuccessStories: content.SuccessStories(),
		UpcomingEvents: content.UpcomingEvents(),
		Ambassadors:    content.Ambassadors(),
	})
}

// Meta GET /api/meta
// Категории и статусы для фильтров и формы.
func (h *ContentHandler) Meta(c *gin.Context) {
	categories := make([]dto.OptionItem, 0, len(models.Categories))
	for _, cat := range models.Categories {
		categories = append(categories, dto.OptionItem{Value: string(cat), Label: string(cat)})
	}

	statuses := make([]dto.OptionItem, 0, len(models.ReportStatuses))
	for _, st := range models.ReportStatuses {
		statuses = append(statuses, dto.OptionItem{Value: string(st), Label: st.Label()})
	}

	c.JSON(http.StatusOK, dto.MetaResponse{Categories: categories, Statuses: statuses})
}
