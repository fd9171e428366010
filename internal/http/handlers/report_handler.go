package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/bulafix-backend/internal/dto"
	"github.com/ignatzorin/bulafix-backend/internal/http/handlers/common"
	"github.com/ignatzorin/bulafix-backend/internal/logger"
	"github.com/ignatzorin/bulafix-backend/internal/pkg/apperror"
	"github.com/ignatzorin/bulafix-backend/internal/service"
	"github.com/ignatzorin/bulafix-backend/internal/storage"
	"github.com/ignatzorin/bulafix-backend/internal/validation"
)

// Лимит тела формы без фото: только текстовые поля и обычная ссылка.
const defaultMaxReportBodyBytes = 1 << 20

// ReportHandler обслуживает страницы карты, отправки и подтверждения обращений.
type ReportHandler struct {
	reports      *service.ReportService
	photos       *storage.PhotoStorage
	maxBodyBytes int64
}

// NewReportHandler создаёт хэндлер. Если photos равен nil,
// вложение фото в multipart форме не поддерживается.
func NewReportHandler(reports *service.ReportService, photos *storage.PhotoStorage) *ReportHandler {
	h := &ReportHandler{reports: reports, photos: photos, maxBodyBytes: defaultMaxReportBodyBytes}
	if photos != nil {
		// Фото приходит либо файлом, либо data:image ссылкой; запас на поля формы.
		maxImage := photos.MaxUploadBytes()
		h.maxBodyBytes = maxImage + int64(validation.MaxDataImageURLLength(maxImage)) + defaultMaxReportBodyBytes
	}
	return h
}

// ListReports GET /api/reports?search=&category=&status=
func (h *ReportHandler) ListReports(c *gin.Context) {
	var q dto.ListReportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	reports, err := h.reports.List(c.Request.Context(), service.ReportFilter{
		Search:   q.Search,
		Category: q.Category,
		Status:   q.Status,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportListResponse{Data: reports, Total: len(reports)})
}

// GetReport GET /api/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateReport POST /api/reports
// Принимает JSON или multipart форму; в форме можно приложить файл photo.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var req dto.CreateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.RespondAppError(c, apperror.New(apperror.ErrCodeTooLarge, "слишком большой запрос"))
			return
		}
		common.RespondBadRequest(c, err.Error())
		return
	}

	var photo *storage.Photo
	if h.photos != nil && c.ContentType() == gin.MIMEMultipartPOSTForm {
		if file, err := c.FormFile("photo"); err == nil {
			src, err := file.Open()
			if err != nil {
				common.RespondBadRequest(c, "не удалось прочитать файл")
				return
			}
			defer src.Close()

			photo, err = h.photos.Save(c.Request.Context(), src)
			if err != nil {
				common.RespondAppError(c, err)
				return
			}
			url := mediaURL(photo.ID.String())
			req.ImageURL = &url
		}
	}

	report, err := h.reports.Create(c.Request.Context(), service.CreateReportInput{
		Title:       req.Title,
		Location:    req.Location,
		Category:    req.Category,
		Description: req.Description,
		Status:      req.Status,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if photo != nil {
			h.discardPhoto(c, photo)
		}
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// discardPhoto убирает фото, к которому так и не привязалось обращение.
func (h *ReportHandler) discardPhoto(c *gin.Context, photo *storage.Photo) {
	if err := h.photos.Delete(c.Request.Context(), photo.ID); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"photo_id": photo.ID,
			"error":    err.Error(),
		}).Warn("orphan photo not deleted")
	}
}

// VerifyReport POST /api/reports/:id/verify
func (h *ReportHandler) VerifyReport(c *gin.Context) {
	report, err := h.reports.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
