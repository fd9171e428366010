package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env             string
	HTTPPort        string
	AllowedOrigins  []string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration
	MaxUploadSizeMB int64
	MediaTTL        time.Duration
	LocationDelay   time.Duration
	ShutdownTimeout time.Duration
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:      env,
		HTTPPort: getEnv("HTTP_PORT", "8080"),
	}

	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	} else {
		cfg.AllowedOrigins = splitList(originsStr)
	}

	var err error
	if cfg.RateLimitLimit, err = parseInt64("RATE_LIMIT_LIMIT", getEnv("RATE_LIMIT_LIMIT", "10")); err != nil {
		return nil, err
	}
	if cfg.RateLimitPeriod, err = parseDuration("RATE_LIMIT_PERIOD", getEnv("RATE_LIMIT_PERIOD", "1m")); err != nil {
		return nil, err
	}
	if cfg.MaxUploadSizeMB, err = parseInt64("MAX_UPLOAD_MB", getEnv("MAX_UPLOAD_MB", "5")); err != nil {
		return nil, err
	}
	if cfg.MediaTTL, err = parseDuration("MEDIA_TTL", getEnv("MEDIA_TTL", "2h")); err != nil {
		return nil, err
	}
	if cfg.LocationDelay, err = parseDuration("LOCATION_DELAY", getEnv("LOCATION_DELAY", "1500ms")); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, err
	}

	if cfg.MaxUploadSizeMB <= 0 {
		return nil, fmt.Errorf("config: MAX_UPLOAD_MB должен быть положительным")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// splitList разбивает список через запятую и убирает пробелы.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseDuration парсит строку в duration.
func parseDuration(key, v string) (time.Duration, error) {
	dur, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить %s=%q: %w", key, v, err)
	}
	return dur, nil
}

// parseInt64 парсит строку в int64.
func parseInt64(key, v string) (int64, error) {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить %s=%q: %w", key, v, err)
	}
	return num, nil
}
