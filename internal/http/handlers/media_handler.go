package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/bulafix-backend/internal/dto"
	"github.com/ignatzorin/bulafix-backend/internal/http/handlers/common"
	"github.com/ignatzorin/bulafix-backend/internal/storage"
)

// MediaPathPrefix префикс, по которому отдаются загруженные фото.
const MediaPathPrefix = "/media/"

// Разрешённые расширения файлов
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func mediaURL(id string) string {
	return MediaPathPrefix + id
}

// MediaHandler принимает и отдаёт фотографии обращений.
type MediaHandler struct {
	storage *storage.PhotoStorage
}

// NewMediaHandler создаёт новый хэндлер.
func NewMediaHandler(storage *storage.PhotoStorage) *MediaHandler {
	return &MediaHandler{storage: storage}
}

// UploadPhoto обрабатывает POST /api/media/photos.
func (h *MediaHandler) UploadPhoto(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.storage.MaxUploadBytes()+1<<20)

	file, err := c.FormFile("file")
	if err != nil {
		common.RespondBadRequest(c, "поле file обязательно")
		return
	}

	if file.Size == 0 {
		common.RespondBadRequest(c, "файл не может быть пустым")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		common.RespondBadRequest(c, fmt.Sprintf("неподдерживаемый формат файла %q", ext))
		return
	}

	src, err := file.Open()
	if err != nil {
		common.RespondBadRequest(c, "не удалось прочитать файл")
		return
	}
	defer src.Close()

	photo, err := h.storage.Save(c.Request.Context(), src)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PhotoUploadResponse{
		ID:          photo.ID.String(),
		URL:         mediaURL(photo.ID.String()),
		ContentType: photo.ContentType,
		Size:        len(photo.Data),
	})
}

// GetPhoto обрабатывает GET /media/:id.
func (h *MediaHandler) GetPhoto(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	photo, err := h.storage.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}
