package models

import (
	"time"

	"github.com/google/uuid"
)

// Suggestion представляет предложение жителя из формы обратной связи.
type Suggestion struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
