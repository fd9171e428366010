package dto

// CreateReportRequest тело POST /api/reports.
// Обязательность полей проверяет сервис, чтобы ответ был одинаковым
// для JSON и multipart форм.
type CreateReportRequest struct {
	Title       string  `json:"title" form:"title"`
	Location    string  `json:"location" form:"location"`
	Category    string  `json:"category" form:"category"`
	Description string  `json:"description" form:"description"`
	Status      string  `json:"status" form:"status"`
	ImageURL    *string `json:"image_url" form:"image_url"`
}

// ListReportsQuery параметры фильтра страницы карты.
type ListReportsQuery struct {
	Search   string `form:"search" binding:"max=100"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

// SuggestionRequest тело POST /api/suggestions.
type SuggestionRequest struct {
	Text string `json:"text" binding:"required"`
}

// VoiceToggleRequest передаёт текущее состояние диктофона на клиенте.
type VoiceToggleRequest struct {
	Recording bool `json:"recording"`
}
