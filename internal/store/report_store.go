// Package store хранит обращения жителей в памяти процесса.
package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/ignatzorin/bulafix-backend/internal/models"
)

// ReportStore единственный источник данных об обращениях в рамках сессии.
// Новые обращения добавляются в начало списка, статистика считается по запросу.
type ReportStore struct {
	mu      sync.RWMutex
	reports []models.Report
	nextID  uint64
	now     func() time.Time
}

// NewReportStore создаёт хранилище с начальным набором обращений.
// Порядок seed сохраняется: первый элемент считается самым свежим.
func NewReportStore(seed []models.Report) *ReportStore {
	reports := make([]models.Report, len(seed))
	copy(reports, seed)

	return &ReportStore{
		reports: reports,
		nextID:  nextIDAfter(reports),
		now:     time.Now,
	}
}

// NewSeededReportStore создаёт хранилище с демонстрационными обращениями.
func NewSeededReportStore() *ReportStore {
	return NewReportStore(SeedReports())
}

// List возвращает копию всех обращений, от новых к старым.
func (s *ReportStore) List() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Len возвращает количество обращений.
func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// Stats считает агрегаты по текущему состоянию.
func (s *ReportStore) Stats() models.ReportStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStats(s.reports)
}

// Get ищет обращение по идентификатору.
func (s *ReportStore) Get(id string) (models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.ID == id {
			return r, true
		}
	}
	return models.Report{}, false
}

// Add создаёт обращение и ставит его первым в списке.
// Обязательность полей проверяет вызывающая сторона.
func (s *ReportStore) Add(input models.NewReportInput) models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := models.Report{
		ID:          strconv.FormatUint(s.nextID, 10),
		Title:       input.Title,
		Location:    input.Location,
		Category:    input.Category,
		Status:      input.Status,
		Date:        s.now().Format(models.ReportDateLayout),
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	s.nextID++

	reports := make([]models.Report, 0, len(s.reports)+1)
	reports = append(reports, report)
	s.reports = append(reports, s.reports...)

	return report
}

// Verify увеличивает счётчик подтверждений на единицу.
// Для неизвестного id ничего не меняет и возвращает false.
func (s *ReportStore) Verify(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].VerificationCount++
			return true
		}
	}
	return false
}

// ComputeStats считает агрегаты по произвольному набору обращений.
func ComputeStats(reports []models.Report) models.ReportStats {
	stats := models.ReportStats{TotalReports: len(reports)}

	for _, r := range reports {
		switch r.Status {
		case models.ReportStatusResolved:
			stats.ResolvedReports++
		case models.ReportStatusAcknowledged:
			stats.AcknowledgedReports++
		case models.ReportStatusInProgress:
			stats.InProgressReports++
		case models.ReportStatusReported:
			stats.PendingReports++
		}
	}

	if stats.TotalReports > 0 {
		stats.ResolutionRate = float64(stats.ResolvedReports) / float64(stats.TotalReports) * 100
	}
	return stats
}

// nextIDAfter возвращает следующий свободный числовой id.
// Нечисловые id из seed не участвуют в нумерации.
func nextIDAfter(reports []models.Report) uint64 {
	var maxID uint64
	for _, r := range reports {
		n, err := strconv.ParseUint(r.ID, 10, 64)
		if err == nil && n > maxID {
			maxID = n
		}
	}
	return maxID + 1
}
