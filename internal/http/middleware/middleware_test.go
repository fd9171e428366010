package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/bulafix-backend/internal/http/handlers/common"
	"github.com/ignatzorin/bulafix-backend/internal/logger"
	"github.com/ignatzorin/bulafix-backend/internal/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Discard()
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, "GET", "/", map[string]string{"Origin": "http://localhost:5173"})
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(r, "GET", "/", map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"*"}))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, "OPTIONS", "/", map[string]string{"Origin": "http://any.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://any.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitMiddleware_Blocks(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware("test", 2, time.Minute))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, "POST", "/", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, "POST", "/", nil).Code)

	w := perform(r, "POST", "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRequestID_GeneratesAndKeeps(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestIDKey)) })

	w := perform(r, "GET", "/", nil)
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	given := uuid.NewString()
	w = perform(r, "GET", "/", map[string]string{RequestIDHeader: given})
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))

	w = perform(r, "GET", "/", map[string]string{RequestIDHeader: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperror.ErrReportNotFound) })
	r.GET("/internal", func(c *gin.Context) { _ = c.Error(errors.New("panic: runtime")) })

	w := perform(r, "GET", "/app", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "обращение не найдено")

	w = perform(r, "GET", "/internal", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "panic")
}

func TestUUIDValidator(t *testing.T) {
	r := gin.New()
	r.GET("/media/:id", UUIDValidator("id"), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusBadRequest, perform(r, "GET", "/media/abc", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, "GET", "/media/"+uuid.NewString(), nil).Code)
}

func TestErrorHandler_LogsHandlerErrorsWithoutRewriting(t *testing.T) {
	hook := logtest.NewLocal(logger.Log)
	defer hook.Reset()

	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.POST("/reports/:id/verify", func(c *gin.Context) {
		common.RespondAppError(c, apperror.ErrReportNotFound)
	})
	r.GET("/boom", func(c *gin.Context) {
		common.RespondAppError(c, errors.New("store exploded"))
	})

	w := perform(r, "POST", "/reports/404/verify", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"обращение не найдено"}`, w.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry.Data["request_id"])

	hook.Reset()
	w = perform(r, "GET", "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "exploded")

	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Data["error"], "store exploded")
}
