package repository

import (
	"context"

	"story-server/internal/models"

	"github.com/google/uuid"
)

// StoryRepository - хранилище сохраненных историй.
// Записи ключуются непрозрачным id; выборка опционально ограничивается
// владельцем. Путь генерации это хранилище не трогает: сохранение -
// отдельный запрос внешнего вызывающего.
type StoryRepository interface {
	// Save вставляет новую запись. ID и CreatedAt заполняются при вставке.
	Save(ctx context.Context, story *models.SavedStory) error
	// List возвращает истории, новые первыми. userID == nil - без фильтра по владельцу.
	List(ctx context.Context, userID *uuid.UUID) ([]models.SavedStory, error)
	// GetByID возвращает историю или models.ErrStoryNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavedStory, error)
	// Delete удаляет историю; models.ErrStoryNotFound, если записи нет.
	Delete(ctx context.Context, id uuid.UUID) error
}
