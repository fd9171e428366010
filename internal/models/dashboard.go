package models

// DashboardRecentLimit задаёт, сколько свежих обращений показывает главная страница.
const DashboardRecentLimit = 4

// Dashboard содержит данные главной страницы.
type Dashboard struct {
	RecentReports     []Report    `json:"recent_reports"`
	Stats             ReportStats `json:"stats"`
	ActiveReports     int         `json:"active_reports"`
	ResolutionPercent int         `json:"resolution_percent"`
}

// StatusCount хранит число обращений в одном статусе.
type StatusCount struct {
	Status ReportStatus `json:"status"`
	Label  string       `json:"label"`
	Count  int          `json:"count"`
	Color  string       `json:"color"`
}

// CategoryCount хранит число обращений в одной категории.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// Transparency содержит данные страницы прозрачности.
type Transparency struct {
	Stats             ReportStats      `json:"stats"`
	StatusBreakdown   []StatusCount    `json:"status_breakdown"`
	CategoryBreakdown []CategoryCount  `json:"category_breakdown"`
	BudgetAllocation  []ChartPoint     `json:"budget_allocation"`
	MonthlyReports    []MonthlyReports `json:"monthly_reports"`
	ResponseTimes     []ChartPoint     `json:"response_times"`
}
