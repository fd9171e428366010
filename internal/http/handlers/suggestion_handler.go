package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/bulafix-backend/internal/dto"
	"github.com/ignatzorin/bulafix-backend/internal/http/handlers/common"
	"github.com/ignatzorin/bulafix-backend/internal/service"
)

// SuggestionHandler обслуживает ящик предложений.
type SuggestionHandler struct {
	svc *service.SuggestionService
}

func NewSuggestionHandler(svc *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

// SubmitSuggestion POST /api/suggestions
func (h *SuggestionHandler) SubmitSuggestion(c *gin.Context) {
	var req dto.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "Please enter your suggestion before submitting.")
		return
	}

	suggestion, err := h.svc.Submit(c.Request.Context(), req.Text)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccess(c, http.StatusCreated, "Thank you for your feedback! Your suggestion has been recorded.", suggestion)
}

// ListSuggestions GET /api/suggestions
func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	suggestions, err := h.svc.List(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
