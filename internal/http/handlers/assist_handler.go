package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/bulafix-backend/internal/dto"
	"github.com/ignatzorin/bulafix-backend/internal/http/handlers/common"
	"github.com/ignatzorin/bulafix-backend/internal/service"
)

// AssistHandler обслуживает вспомогательные действия формы отправки обращения.
type AssistHandler struct {
	assist *service.AssistService
}

func NewAssistHandler(assist *service.AssistService) *AssistHandler {
	return &AssistHandler{assist: assist}
}

// DetectLocation POST /api/location/detect
func (h *AssistHandler) DetectLocation(c *gin.Context) {
	location, err := h.assist.DetectLocation(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LocationResponse{
		Location: location,
		Title:    "Location Detected",
		Message:  "Your current location has been detected.",
	})
}

// ToggleVoice POST /api/voice/toggle
func (h *AssistHandler) ToggleVoice(c *gin.Context) {
	var req dto.VoiceToggleRequest
	// Пустое тело (в том числе chunked) означает «запись не идёт».
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, h.assist.ToggleRecording(req.Recording))
}

// ListTemplates GET /api/report-templates
func (h *AssistHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.assist.Templates())
}
