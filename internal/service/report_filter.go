package service

import (
	"strings"

	"github.com/ignatzorin/bulafix-backend/internal/models"
)

// Значения фильтров «без ограничения» со страницы карты.
const (
	AllCategories = "All Categories"
	AllStatuses   = "All Statuses"
)

// ReportFilter задаёт условия отбора обращений на странице карты.
type ReportFilter struct {
	Search   string
	Category string
	Status   string
}

// NormalizeStatus приводит подпись статуса к значению перечисления:
// "In Progress" -> "in-progress". Пустая строка и AllStatuses дают "".
func NormalizeStatus(raw string) models.ReportStatus {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, AllStatuses) {
		return ""
	}
	return models.ReportStatus(strings.ReplaceAll(strings.ToLower(raw), " ", "-"))
}

// Matches проверяет обращение по всем условиям сразу.
func (f ReportFilter) Matches(r models.Report) bool {
	return f.matchesSearch(r) && f.matchesCategory(r) && f.matchesStatus(r)
}

func (f ReportFilter) matchesSearch(r models.Report) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Location), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

func (f ReportFilter) matchesCategory(r models.Report) bool {
	c := strings.TrimSpace(f.Category)
	if c == "" || c == AllCategories {
		return true
	}
	return string(r.Category) == c
}

func (f ReportFilter) matchesStatus(r models.Report) bool {
	s := NormalizeStatus(f.Status)
	if s == "" {
		return true
	}
	return r.Status == s
}

// Apply отбирает обращения, сохраняя исходный порядок.
func (f ReportFilter) Apply(reports []models.Report) []models.Report {
	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
