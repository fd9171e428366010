package dto

import (
	"github.com/ignatzorin/bulafix-backend/internal/models"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ReportListResponse содержит найденные обращения и их число.
type ReportListResponse struct {
	Data  []models.Report `json:"data"`
	Total int             `json:"total"`
}

// PhotoUploadResponse представляет ответ на загрузку фото.
type PhotoUploadResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// LocationResponse содержит результат имитации геолокации.
type LocationResponse struct {
	Location string `json:"location"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// OptionItem описывает значение перечисления с подписью.
type OptionItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MetaResponse содержит справочники для фильтров и формы.
type MetaResponse struct {
	Categories []OptionItem `json:"categories"`
	Statuses   []OptionItem `json:"statuses"`
}

// CommunityResponse содержит данные страницы сообщества.
type CommunityResponse struct {
	SuccessStories []models.SuccessStory   `json:"success_stories"`
	UpcomingEvents []models.CommunityEvent `json:"upcoming_events"`
	Ambassadors    []models.Ambassador     `json:"ambassadors"`
}
