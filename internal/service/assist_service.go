package service

import (
	"context"
	"time"

	"github.com/ignatzorin/bulafix-backend/internal/content"
	"github.com/ignatzorin/bulafix-backend/internal/models"
)

// DetectedLocation адрес, который возвращает имитация геолокации.
const DetectedLocation = "CBD, Bulawayo (auto-detected)"

// VoiceState описывает состояние имитации диктофона.
type VoiceState struct {
	Recording bool   `json:"recording"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

// AssistService имитирует геолокацию и запись голоса на странице отправки.
// Реального доступа к GPS и микрофону нет.
type AssistService struct {
	locationDelay time.Duration
}

func NewAssistService(locationDelay time.Duration) *AssistService {
	return &AssistService{locationDelay: locationDelay}
}

// DetectLocation ждёт locationDelay и возвращает фиксированный адрес.
func (s *AssistService) DetectLocation(ctx context.Context) (string, error) {
	if s.locationDelay <= 0 {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return DetectedLocation, nil
	}

	timer := time.NewTimer(s.locationDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return DetectedLocation, nil
	}
}

// ToggleRecording переключает запись; recording передаёт текущее состояние клиента.
func (s *AssistService) ToggleRecording(recording bool) VoiceState {
	if recording {
		return VoiceState{
			Recording: false,
			Title:     "Recording Saved",
			Message:   "Your voice recording has been attached to the report.",
		}
	}
	return VoiceState{
		Recording: true,
		Title:     "Recording Started",
		Message:   "Speak clearly to describe the issue you're reporting.",
	}
}

// Templates возвращает заготовки быстрых обращений.
func (s *AssistService) Templates() []models.ReportTemplate {
	return content.ReportTemplates()
}
