package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/bulafix-backend/internal/logger"
	"github.com/ignatzorin/bulafix-backend/internal/pkg/apperror"
)

// ErrorHandler логирует ошибки, добавленные через c.Error, с request id.
// Если хэндлер не успел ответить, отдаёт JSON: AppError как есть,
// остальные маскируются.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		appErr, isAppErr := apperror.As(err.Err)

		entry := logger.Log.WithFields(logrus.Fields{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(ContextRequestIDKey),
		})
		switch {
		case isAppErr && appErr.HTTPStatus < http.StatusInternalServerError:
			entry.Warn("request rejected")
		case errors.Is(err.Err, context.Canceled):
			entry.Info("request cancelled")
		default:
			entry.Error("request error")
		}

		// Ответ уже отправлен хэндлером
		if c.Writer.Written() {
			return
		}

		if isAppErr {
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка сервера"})
	}
}
