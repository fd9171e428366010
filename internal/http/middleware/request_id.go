package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader заголовок с идентификатором запроса.
	RequestIDHeader = "X-Request-ID"
	// ContextRequestIDKey ключ идентификатора в gin.Context.
	ContextRequestIDKey = "requestID"
)

// RequestID берёт X-Request-ID клиента, если это UUID, иначе генерирует новый.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
