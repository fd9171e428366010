package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/bulafix-backend/internal/config"
	"github.com/ignatzorin/bulafix-backend/internal/http/handlers"
	"github.com/ignatzorin/bulafix-backend/internal/http/middleware"
)

// Handlers собирает все хэндлеры приложения.
type Handlers struct {
	Reports     *handlers.ReportHandler
	Stats       *handlers.StatsHandler
	Media       *handlers.MediaHandler
	Assist      *handlers.AssistHandler
	Suggestions *handlers.SuggestionHandler
	Content     *handlers.ContentHandler
	Health      *handlers.HealthHandler
}

func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)
	r.GET("/media/:id", middleware.UUIDValidator("id"), h.Media.GetPhoto)

	api := r.Group("/api")

	// Чтение без ограничений
	api.GET("/dashboard", h.Stats.GetDashboard)
	api.GET("/stats", h.Stats.GetStats)
	api.GET("/transparency", h.Stats.GetTransparency)
	api.GET("/reports", h.Reports.ListReports)
	api.GET("/reports/:id", h.Reports.GetReport)
	api.GET("/report-templates", h.Assist.ListTemplates)
	api.GET("/suggestions", h.Suggestions.ListSuggestions)
	api.GET("/helplines", h.Content.Helplines)
	api.GET("/community", h.Content.Community)
	api.GET("/meta", h.Content.Meta)

	// Изменяющие запросы ограничиваем по IP
	writes := api.Group("/")
	writes.Use(middleware.RateLimitMiddleware("writes", cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		writes.POST("/reports", h.Reports.CreateReport)
		writes.POST("/reports/:id/verify", h.Reports.VerifyReport)
		writes.POST("/media/photos", h.Media.UploadPhoto)
		writes.POST("/suggestions", h.Suggestions.SubmitSuggestion)
	}

	// У имитаций устройства отдельный счётчик
	assist := api.Group("/")
	assist.Use(middleware.RateLimitMiddleware("assist", cfg.RateLimitLimit*3, cfg.RateLimitPeriod))
	{
		assist.POST("/location/detect", h.Assist.DetectLocation)
		assist.POST("/voice/toggle", h.Assist.ToggleVoice)
	}

	return r
}
