package models

// ReportStatus описывает стадию обработки обращения.
type ReportStatus string

const (
	ReportStatusReported     ReportStatus = "reported"
	ReportStatusAcknowledged ReportStatus = "acknowledged"
	ReportStatusInProgress   ReportStatus = "in-progress"
	ReportStatusResolved     ReportStatus = "resolved"
	ReportStatusRejected     ReportStatus = "rejected"
)

// ReportStatuses перечисляет статусы в порядке жизненного цикла.
var ReportStatuses = []ReportStatus{
	ReportStatusReported,
	ReportStatusAcknowledged,
	ReportStatusInProgress,
	ReportStatusResolved,
	ReportStatusRejected,
}

var statusLabels = map[ReportStatus]string{
	ReportStatusReported:     "Reported",
	ReportStatusAcknowledged: "Acknowledged",
	ReportStatusInProgress:   "In Progress",
	ReportStatusResolved:     "Resolved",
	ReportStatusRejected:     "Rejected",
}

var statusColors = map[ReportStatus]string{
	ReportStatusReported:     "#f97316",
	ReportStatusAcknowledged: "#3b82f6",
	ReportStatusInProgress:   "#eab308",
	ReportStatusResolved:     "#22c55e",
	ReportStatusRejected:     "#ef4444",
}

// IsValid проверяет, что статус входит в перечисление.
func (s ReportStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label возвращает отображаемое название статуса.
func (s ReportStatus) Label() string {
	return statusLabels[s]
}

// Color возвращает цвет статуса для графиков.
func (s ReportStatus) Color() string {
	return statusColors[s]
}

// Category определяет тип городской проблемы.
type Category string

const (
	CategoryWater        Category = "Water"
	CategoryRoads        Category = "Roads"
	CategoryElectricity  Category = "Electricity"
	CategorySanitation   Category = "Sanitation"
	CategoryDrainage     Category = "Drainage"
	CategoryPublicSpaces Category = "Public Spaces"
)

// Categories перечисляет категории в порядке отображения.
var Categories = []Category{
	CategoryWater,
	CategoryRoads,
	CategoryElectricity,
	CategorySanitation,
	CategoryDrainage,
	CategoryPublicSpaces,
}

// IsValid проверяет, что категория входит в перечисление.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ReportDateLayout формат даты обращения ("May 3, 2025").
const ReportDateLayout = "Jan 2, 2006"

// Report представляет обращение жителя о городской проблеме.
type Report struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Location          string       `json:"location"`
	Category          Category     `json:"category"`
	Status            ReportStatus `json:"status"`
	Date              string       `json:"date"`
	Description       string       `json:"description"`
	ImageURL          *string      `json:"image_url,omitempty"`
	VerificationCount int          `json:"verification_count"`
	CommentCount      int          `json:"comment_count"`
}

// NewReportInput содержит данные, которые передаёт автор обращения.
type NewReportInput struct {
	Title       string
	Location    string
	Category    Category
	Description string
	Status      ReportStatus
	ImageURL    *string
}

// ReportStats содержит агрегаты по текущему набору обращений.
type ReportStats struct {
	TotalReports        int     `json:"total_reports"`
	ResolvedReports     int     `json:"resolved_reports"`
	AcknowledgedReports int     `json:"acknowledged_reports"`
	InProgressReports   int     `json:"in_progress_reports"`
	PendingReports      int     `json:"pending_reports"`
	ResolutionRate      float64 `json:"resolution_rate"`
}
