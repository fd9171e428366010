package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/bulafix-backend/internal/config"
	"github.com/ignatzorin/bulafix-backend/internal/dto"
	"github.com/ignatzorin/bulafix-backend/internal/http/handlers"
	"github.com/ignatzorin/bulafix-backend/internal/logger"
	"github.com/ignatzorin/bulafix-backend/internal/models"
	"github.com/ignatzorin/bulafix-backend/internal/service"
	"github.com/ignatzorin/bulafix-backend/internal/storage"
	"github.com/ignatzorin/bulafix-backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Discard()
}

func testConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		HTTPPort:        "0",
		AllowedOrigins:  []string{"http://localhost:5173"},
		RateLimitLimit:  100,
		RateLimitPeriod: time.Minute,
		MaxUploadSizeMB: 1,
		MediaTTL:        time.Hour,
	}
}

func setupTestRouter(cfg *config.Config) *gin.Engine {
	reportStore := store.NewSeededReportStore()
	photos := storage.NewPhotoStorage(cfg.MaxUploadSizeMB, cfg.MediaTTL)
	reports := service.NewReportService(reportStore, photos.MaxUploadBytes())

	return SetupRouter(cfg, Handlers{
		Reports:     handlers.NewReportHandler(reports, photos),
		Stats:       handlers.NewStatsHandler(reports),
		Media:       handlers.NewMediaHandler(photos),
		Assist:      handlers.NewAssistHandler(service.NewAssistService(0)),
		Suggestions: handlers.NewSuggestionHandler(service.NewSuggestionService()),
		Content:     handlers.NewContentHandler(),
		Health:      handlers.NewHealthHandler(reportStore),
	})
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_SubmitVerifyAndDashboard(t *testing.T) {
	r := setupTestRouter(testConfig())

	w := perform(r, "POST", "/api/reports",
		`{"title":"Pothole","location":"X","category":"Roads","description":"Y"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.ReportStatusReported, created.Status)

	w = perform(r, "POST", "/api/reports/"+created.ID+"/verify", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(r, "GET", "/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	var d models.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))

	assert.Equal(t, 7, d.Stats.TotalReports)
	assert.Equal(t, 3, d.Stats.PendingReports)
	require.Len(t, d.RecentReports, models.DashboardRecentLimit)
	assert.Equal(t, created.ID, d.RecentReports[0].ID)
	assert.Equal(t, 1, d.RecentReports[0].VerificationCount)
}

func TestRouter_ListReportsSearch(t *testing.T) {
	r := setupTestRouter(testConfig())

	w := perform(r, "GET", "/api/reports?search=nkulumane&category=All+Categories&status=All+Statuses", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "3", resp.Data[0].ID)
}

func TestRouter_VerifyUnknownReport(t *testing.T) {
	r := setupTestRouter(testConfig())

	w := perform(r, "POST", "/api/reports/404/verify", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestRouter_PhotoUploadAndServe(t *testing.T) {
	r := setupTestRouter(testConfig())
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "pipe.png")
	require.NoError(t, err)
	_, _ = fw.Write(png)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/media/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var uploaded dto.PhotoUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))

	w = perform(r, "POST", "/api/reports",
		`{"title":"Burst pipe","location":"Mpopoma","category":"Water","description":"Leak","image_url":"`+uploaded.URL+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, "GET", uploaded.URL, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, png, w.Body.Bytes())

	w = perform(r, "GET", "/media/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Suggestions(t *testing.T) {
	r := setupTestRouter(testConfig())

	w := perform(r, "POST", "/api/suggestions", `{"text":"Fix the lights on 5th Avenue"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, "GET", "/api/suggestions", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Suggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestRouter_StaticPages(t *testing.T) {
	r := setupTestRouter(testConfig())

	for _, path := range []string{
		"/health",
		"/api/stats",
		"/api/transparency",
		"/api/report-templates",
		"/api/helplines",
		"/api/community",
		"/api/meta",
	} {
		w := perform(r, "GET", path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	r := setupTestRouter(testConfig())

	w := perform(r, "GET", "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := setupTestRouter(testConfig())

	req := httptest.NewRequest("OPTIONS", "/api/reports", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_WriteRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitLimit = 2
	r := setupTestRouter(cfg)

	body := `{"text":"more bins"}`
	assert.Equal(t, http.StatusCreated, perform(r, "POST", "/api/suggestions", body).Code)
	assert.Equal(t, http.StatusCreated, perform(r, "POST", "/api/suggestions", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, "POST", "/api/suggestions", body).Code)

	// Чтение не ограничивается
	assert.Equal(t, http.StatusOK, perform(r, "GET", "/api/suggestions", "").Code)
}
