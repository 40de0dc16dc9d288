package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedStory - сохраненная пользователем история.
// JSON-имена в snake_case: этот формат ожидает существующий клиент списка историй.
type SavedStory struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	Title         string     `json:"title" db:"title"`
	Content       string     `json:"content" db:"content"`
	Genre         string     `json:"genre" db:"genre"`
	Theme         string     `json:"theme" db:"theme"`
	CharacterType string     `json:"character_type" db:"character_type"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
