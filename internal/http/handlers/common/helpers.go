// Package common содержит общие для хэндлеров функции ответа.
package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/bulafix-backend/internal/dto"
	"github.com/ignatzorin/bulafix-backend/internal/pkg/apperror"
)

// ErrInvalidUUID возвращается, если параметр пути не является UUID.
var ErrInvalidUUID = errors.New("неверный формат UUID")

// ParseUUIDParam достаёт UUID из параметра пути.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("параметр %s отсутствует", name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}

// RespondError пишет {"error": message}.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// RespondAppError переводит ошибку сервиса в HTTP ответ.
// Ошибка сохраняется в c.Errors, логирует её middleware.ErrorHandler.
// Неизвестные ошибки клиенту не раскрываются.
func RespondAppError(c *gin.Context, err error) {
	_ = c.Error(err)

	if appErr, ok := apperror.As(err); ok {
		RespondError(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		RespondError(c, http.StatusRequestTimeout, "запрос отменён")
		return
	}

	RespondInternalError(c, "")
}

// RespondSuccess пишет сообщение для тоста вместе с созданным объектом.
func RespondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.SuccessResponse{Message: message, Data: data})
}

func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "некорректный запрос"
	}
	RespondError(c, http.StatusBadRequest, message)
}

func RespondInternalError(c *gin.Context, message string) {
	if message == "" {
		message = "внутренняя ошибка сервера"
	}
	RespondError(c, http.StatusInternalServerError, message)
}
