package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/patrickmn/go-cache"

	"github.com/ignatzorin/bulafix-backend/internal/pkg/apperror"
)

// Разрешённые типы изображений.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Photo представляет загруженное изображение.
type Photo struct {
	ID          uuid.UUID
	ContentType string
	Data        []byte
	UploadedAt  time.Time
}

// PhotoStorage держит фотографии обращений в памяти процесса.
// Записи живут ttl и не переживают перезапуск.
type PhotoStorage struct {
	cache          *cache.Cache
	maxUploadBytes int64
}

// NewPhotoStorage создаёт хранилище. При ttl <= 0 записи не истекают.
func NewPhotoStorage(maxUploadMB int64, ttl time.Duration) *PhotoStorage {
	expiration := ttl
	cleanup := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}

	return &PhotoStorage{
		cache:          cache.New(expiration, cleanup),
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}
}

// MaxUploadBytes возвращает лимит размера файла.
func (s *PhotoStorage) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Save читает файл, проверяет магические байты и сохраняет изображение.
func (s *PhotoStorage) Save(ctx context.Context, r io.Reader) (*Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	data, err := io.ReadAll(&limitedReader)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeBadRequest, "не удалось прочитать файл")
	}

	if len(data) == 0 {
		return nil, apperror.ErrEmptyFile
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, apperror.New(apperror.ErrCodeTooLarge, fmt.Sprintf("размер файла превышает лимит %d байт", s.maxUploadBytes))
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, apperror.New(apperror.ErrCodeUnsupportedMedia, "не удалось определить тип файла. Разрешены только изображения")
	}
	if !allowedMimeTypes[kind.MIME.Value] {
		return nil, apperror.New(apperror.ErrCodeUnsupportedMedia, fmt.Sprintf("неподдерживаемый тип файла (%s)", kind.MIME.Value))
	}

	photo := &Photo{
		ID:          uuid.New(),
		ContentType: kind.MIME.Value,
		Data:        data,
		UploadedAt:  time.Now(),
	}
	s.cache.SetDefault(photo.ID.String(), photo)

	return photo, nil
}

// Get возвращает изображение по id.
func (s *PhotoStorage) Get(ctx context.Context, id uuid.UUID) (*Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, ok := s.cache.Get(id.String())
	if !ok {
		return nil, apperror.ErrMediaNotFound
	}
	photo, ok := raw.(*Photo)
	if !ok {
		return nil, apperror.ErrMediaNotFound
	}
	return photo, nil
}

// Delete удаляет изображение.
func (s *PhotoStorage) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.cache.Delete(id.String())
	return nil
}

// Count возвращает число сохранённых изображений.
func (s *PhotoStorage) Count() int {
	return s.cache.ItemCount()
}
