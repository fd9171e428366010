package service

import (
	"context"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/bulafix-backend/internal/content"
	"github.com/ignatzorin/bulafix-backend/internal/logger"
	"github.com/ignatzorin/bulafix-backend/internal/models"
	"github.com/ignatzorin/bulafix-backend/internal/pkg/apperror"
	"github.com/ignatzorin/bulafix-backend/internal/store"
	"github.com/ignatzorin/bulafix-backend/internal/validation"
)

// ReportRepository описывает операции хранилища обращений, нужные сервису.
type ReportRepository interface {
	List() []models.Report
	Get(id string) (models.Report, bool)
	Add(input models.NewReportInput) models.Report
	Verify(id string) bool
	Stats() models.ReportStats
}

// CreateReportInput содержит данные формы отправки обращения.
type CreateReportInput struct {
	Title       string
	Location    string
	Category    string
	Description string
	Status      string
	ImageURL    *string
}

// ReportService обслуживает страницы, работающие с обращениями.
type ReportService struct {
	repo             ReportRepository
	maxDataURLLength int
}

// NewReportService создаёт сервис поверх хранилища.
// maxImageBytes ограничивает встроенные data:image ссылки тем же лимитом,
// что и загрузку фото; 0 оставляет только общий лимит длины ссылки.
func NewReportService(repo ReportRepository, maxImageBytes int64) *ReportService {
	svc := &ReportService{repo: repo}
	if maxImageBytes > 0 {
		svc.maxDataURLLength = validation.MaxDataImageURLLength(maxImageBytes)
	}
	return svc
}

// Create проверяет заполненность формы и добавляет обращение.
func (s *ReportService) Create(ctx context.Context, in CreateReportInput) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validation.ValidateReportTitle(in.Title); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := validation.ValidateReportLocation(in.Location); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := validation.ValidateReportDescription(in.Description); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := validation.ValidateImageURL(in.ImageURL, s.maxDataURLLength); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	category := models.Category(strings.TrimSpace(in.Category))
	if category == "" {
		return nil, apperror.Validation("категория обязательна")
	}
	if !category.IsValid() {
		return nil, apperror.Validation("некорректная категория")
	}

	status := models.ReportStatusReported
	if in.Status != "" {
		status = NormalizeStatus(in.Status)
		if !status.IsValid() {
			return nil, apperror.Validation("некорректный статус обращения")
		}
	}

	var imageURL *string
	if in.ImageURL != nil && strings.TrimSpace(*in.ImageURL) != "" {
		trimmed := strings.TrimSpace(*in.ImageURL)
		imageURL = &trimmed
	}

	report := s.repo.Add(models.NewReportInput{
		Title:       strings.TrimSpace(in.Title),
		Location:    strings.TrimSpace(in.Location),
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		ImageURL:    imageURL,
	})

	logger.Log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"category":  report.Category,
	}).Info("report created")

	return &report, nil
}

// Get возвращает обращение по id.
func (s *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, ok := s.repo.Get(id)
	if !ok {
		return nil, apperror.ErrReportNotFound
	}
	return &report, nil
}

// List возвращает обращения, прошедшие фильтр, от новых к старым.
func (s *ReportService) List(ctx context.Context, filter ReportFilter) ([]models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return filter.Apply(s.repo.List()), nil
}

// Verify добавляет подтверждение и возвращает обновлённое обращение.
// Хранилище молча игнорирует неизвестный id, здесь это not found.
func (s *ReportService) Verify(ctx context.Context, id string) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !s.repo.Verify(id) {
		logger.Log.WithField("report_id", id).Debug("verify for unknown report ignored")
		return nil, apperror.ErrReportNotFound
	}

	report, ok := s.repo.Get(id)
	if !ok {
		return nil, apperror.ErrReportNotFound
	}

	logger.Log.WithFields(logrus.Fields{
		"report_id":          id,
		"verification_count": report.VerificationCount,
	}).Info("report verified")

	return &report, nil
}

// Stats возвращает текущие агрегаты.
func (s *ReportService) Stats(ctx context.Context) (models.ReportStats, error) {
	if err := ctx.Err(); err != nil {
		return models.ReportStats{}, err
	}
	return s.repo.Stats(), nil
}

// Dashboard собирает данные главной страницы.
func (s *ReportService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Список и статистика берутся из одного снимка.
	reports := s.repo.List()
	stats := store.ComputeStats(reports)

	recent := reports
	if len(recent) > models.DashboardRecentLimit {
		recent = recent[:models.DashboardRecentLimit]
	}

	return &models.Dashboard{
		RecentReports:     recent,
		Stats:             stats,
		ActiveReports:     stats.InProgressReports + stats.AcknowledgedReports,
		ResolutionPercent: int(math.Round(stats.ResolutionRate)),
	}, nil
}

// Transparency собирает данные страницы прозрачности: живые разбивки
// по статусам и категориям плюс статические графики.
func (s *ReportService) Transparency(ctx context.Context) (*models.Transparency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := s.repo.List()

	byStatus := make(map[models.ReportStatus]int, len(models.ReportStatuses))
	byCategory := make(map[models.Category]int, len(models.Categories))
	for _, r := range reports {
		byStatus[r.Status]++
		byCategory[r.Category]++
	}

	statuses := make([]models.StatusCount, 0, len(models.ReportStatuses))
	for _, st := range models.ReportStatuses {
		statuses = append(statuses, models.StatusCount{
			Status: st,
			Label:  st.Label(),
			Count:  byStatus[st],
			Color:  st.Color(),
		})
	}

	categories := make([]models.CategoryCount, 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, models.CategoryCount{Category: c, Count: byCategory[c]})
	}

	return &models.Transparency{
		Stats:             store.ComputeStats(reports),
		StatusBreakdown:   statuses,
		CategoryBreakdown: categories,
		BudgetAllocation:  content.BudgetAllocation(),
		MonthlyReports:    content.MonthlyReports(),
		ResponseTimes:     content.ResponseTimes(),
	}, nil
}
