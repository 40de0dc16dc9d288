package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"story-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	pgxV5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	insertStoryQuery = `
        INSERT INTO saved_stories (id, user_id, title, content, genre, theme, character_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	listStoriesQuery = `
        SELECT id, user_id, title, content, genre, theme, character_type, created_at
        FROM saved_stories
        ORDER BY created_at DESC
    `
	listStoriesByUserQuery = `
        SELECT id, user_id, title, content, genre, theme, character_type, created_at
        FROM saved_stories
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	getStoryByIDQuery = `
        SELECT id, user_id, title, content, genre, theme, character_type, created_at
        FROM saved_stories
        WHERE id = $1
    `
	deleteStoryQuery = `DELETE FROM saved_stories WHERE id = $1`
)

type pgStoryRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPgStoryRepository создает репозиторий сохраненных историй поверх PostgreSQL.
func NewPgStoryRepository(pool *pgxpool.Pool, logger *zap.Logger) StoryRepository {
	return &pgStoryRepository{
		pool:   pool,
		logger: logger.Named("PgStoryRepo"),
	}
}

func (r *pgStoryRepository) Save(ctx context.Context, story *models.SavedStory) error {
	if story.ID == uuid.Nil {
		story.ID = uuid.New()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, insertStoryQuery,
		story.ID, story.UserID, story.Title, story.Content,
		story.Genre, story.Theme, story.CharacterType, story.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Error inserting saved story", zap.String("story_id", story.ID.String()), zap.Error(err))
		return fmt.Errorf("failed to insert saved story: %w", err)
	}
	return nil
}

func (r *pgStoryRepository) List(ctx context.Context, userID *uuid.UUID) ([]models.SavedStory, error) {
	var stories []models.SavedStory
	var err error
	if userID != nil {
		err = pgxscan.Select(ctx, r.pool, &stories, listStoriesByUserQuery, *userID)
	} else {
		err = pgxscan.Select(ctx, r.pool, &stories, listStoriesQuery)
	}
	if err != nil {
		// pgx.ErrNoRows здесь не страшна, просто вернем пустой срез
		if errors.Is(err, pgxV5.ErrNoRows) {
			return []models.SavedStory{}, nil
		}
		r.logger.Error("Error listing saved stories", zap.Error(err))
		return nil, fmt.Errorf("failed to list saved stories: %w", err)
	}
	if stories == nil {
		stories = []models.SavedStory{}
	}
	return stories, nil
}

func (r *pgStoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedStory, error) {
	var story models.SavedStory
	err := pgxscan.Get(ctx, r.pool, &story, getStoryByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgxV5.ErrNoRows) {
			return nil, models.ErrStoryNotFound
		}
		r.logger.Error("Error getting saved story", zap.String("story_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get saved story %s: %w", id, err)
	}
	return &story, nil
}

func (r *pgStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteStoryQuery, id)
	if err != nil {
		r.logger.Error("Error deleting saved story", zap.String("story_id", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete saved story %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrStoryNotFound
	}
	return nil
}
