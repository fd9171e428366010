package models

// Helpline описывает телефон экстренной службы.
type Helpline struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

// SuccessStory описывает историю решённой проблемы на странице сообщества.
type SuccessStory struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Author         string   `json:"author"`
	AuthorInitials string   `json:"author_initials"`
	Date           string   `json:"date"`
	Content        string   `json:"content"`
	Category       Category `json:"category"`
	Area           string   `json:"area"`
	Likes          int      `json:"likes"`
	Comments       int      `json:"comments"`
}

// CommunityEvent описывает предстоящее мероприятие сообщества.
type CommunityEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Attendees   int    `json:"attendees"`
}

// Ambassador описывает активного участника сообщества.
type Ambassador struct {
	Name          string `json:"name"`
	Initials      string `json:"initials"`
	Area          string `json:"area"`
	Reports       int    `json:"reports"`
	Verifications int    `json:"verifications"`
	Joined        string `json:"joined"`
}

// ReportTemplate заготовка быстрого обращения.
type ReportTemplate struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// ChartPoint точка статического графика прозрачности.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// MonthlyReports хранит помесячную динамику обращений.
type MonthlyReports struct {
	Name     string `json:"name"`
	Reports  int    `json:"reports"`
	Resolved int    `json:"resolved"`
}
