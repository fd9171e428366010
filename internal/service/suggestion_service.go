package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/bulafix-backend/internal/logger"
	"github.com/ignatzorin/bulafix-backend/internal/models"
	"github.com/ignatzorin/bulafix-backend/internal/pkg/apperror"
	"github.com/ignatzorin/bulafix-backend/internal/validation"
)

// SuggestionService хранит ящик предложений только в памяти процесса.
type SuggestionService struct {
	mu          sync.RWMutex
	suggestions []models.Suggestion
	now         func() time.Time
}

func NewSuggestionService() *SuggestionService {
	return &SuggestionService{now: time.Now}
}

// Submit сохраняет предложение. Пустой текст отклоняется.
func (s *SuggestionService) Submit(ctx context.Context, text string) (*models.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.ValidateSuggestion(text); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	suggestion := models.Suggestion{
		ID:        uuid.New(),
		Text:      strings.TrimSpace(text),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.suggestions = append([]models.Suggestion{suggestion}, s.suggestions...)
	s.mu.Unlock()

	logger.Log.WithField("suggestion_id", suggestion.ID).Info("suggestion received")
	return &suggestion, nil
}

// List возвращает предложения от новых к старым.
func (s *SuggestionService) List(ctx context.Context) ([]models.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Suggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out, nil
}
