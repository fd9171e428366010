package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log общий логгер приложения. До вызова Setup пишет в stderr с уровнем info.
var Log = logrus.New()

// Setup настраивает уровень и формат логов под окружение.
// В development включаются debug и текстовый формат, иначе info и JSON.
func Setup(env string) {
	if env == "development" {
		Init("debug")
		SetTextFormatter()
		return
	}
	Init("info")
}

// Init инициализирует структурированный логгер.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// Discard отключает вывод логов (используется в тестах).
func Discard() {
	Log.SetOutput(io.Discard)
}
