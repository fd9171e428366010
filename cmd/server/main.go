package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ignatzorin/bulafix-backend/internal/config"
	"github.com/ignatzorin/bulafix-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/bulafix-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/bulafix-backend/internal/http/router"
	"github.com/ignatzorin/bulafix-backend/internal/logger"
	"github.com/ignatzorin/bulafix-backend/internal/service"
	"github.com/ignatzorin/bulafix-backend/internal/storage"
	"github.com/ignatzorin/bulafix-backend/internal/store"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Setup(cfg.Env)

	// Состояние сессии: всё в памяти, теряется при остановке.
	reportStore := store.NewSeededReportStore()
	photoStorage := storage.NewPhotoStorage(cfg.MaxUploadSizeMB, cfg.MediaTTL)

	// Сервисы.
	reportService := service.NewReportService(reportStore, photoStorage.MaxUploadBytes())
	suggestionService := service.NewSuggestionService()
	assistService := service.NewAssistService(cfg.LocationDelay)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, httpRouter.Handlers{
		Reports:     httpHandlers.NewReportHandler(reportService, photoStorage),
		Stats:       httpHandlers.NewStatsHandler(reportService),
		Media:       httpHandlers.NewMediaHandler(photoStorage),
		Assist:      httpHandlers.NewAssistHandler(assistService),
		Suggestions: httpHandlers.NewSuggestionHandler(suggestionService),
		Content:     httpHandlers.NewContentHandler(),
		Health:      httpHandlers.NewHealthHandler(reportStore),
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.GoWithContext(ctx, "http-shutdown", func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	logger.Log.WithField("port", cfg.HTTPPort).Infof("main: HTTP сервер запущен, обращений в сессии: %d", reportStore.Len())

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.WithError(err).Fatal("main: сервер завершился с ошибкой")
	}
}
