package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_MapsHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, New(ErrCodeNotFound, "x").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, New(ErrCodeValidation, "x").HTTPStatus)
	assert.Equal(t, http.StatusUnsupportedMediaType, New(ErrCodeUnsupportedMedia, "x").HTTPStatus)
	assert.Equal(t, http.StatusRequestEntityTooLarge, New(ErrCodeTooLarge, "x").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, New(ErrCodeInternal, "x").HTTPStatus)
}

func TestWrap_UnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "не удалось")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestIsNotFound_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("service: %w", ErrReportNotFound)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "обращение не найдено", appErr.Message)
}
