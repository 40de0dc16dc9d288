package handler

import (
	"fmt"
	"net/http"
	"strings"

	"story-server/internal/models"
	"story-server/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoryHandler обрабатывает CRUD запросы хранилища сохраненных историй.
type StoryHandler struct {
	repo   repository.StoryRepository
	logger *zap.Logger
}

// NewStoryHandler создает новый StoryHandler.
func NewStoryHandler(repo repository.StoryRepository, logger *zap.Logger) *StoryHandler {
	return &StoryHandler{
		repo:   repo,
		logger: logger.Named("StoryHandler"),
	}
}

// RegisterRoutes регистрирует маршруты хранилища историй.
func (h *StoryHandler) RegisterRoutes(router gin.IRouter) {
	storiesGroup := router.Group("/stories")
	{
		storiesGroup.POST("", h.HandleSaveStory)
		storiesGroup.GET("", h.HandleListStories)
		storiesGroup.GET("/:id", h.HandleGetStory)
		storiesGroup.DELETE("/:id", h.HandleDeleteStory)
	}
}

// HandleSaveStory обрабатывает POST /stories.
func (h *StoryHandler) HandleSaveStory(c *gin.Context) {
	var req saveStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	var missing []string
	for field, value := range map[string]string{
		"title":         req.Title,
		"content":       req.Content,
		"genre":         req.Genre,
		"theme":         req.Theme,
		"characterType": req.CharacterType,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		handleStoreError(c, h.logger, fmt.Errorf("%w: missing required fields: %s",
			models.ErrBadRequest, strings.Join(missing, ", ")))
		return
	}

	story := &models.SavedStory{
		Title:         req.Title,
		Content:       req.Content,
		Genre:         req.Genre,
		Theme:         req.Theme,
		CharacterType: req.CharacterType,
	}

	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			handleStoreError(c, h.logger, fmt.Errorf("%w: invalid userId", models.ErrBadRequest))
			return
		}
		story.UserID = &userID
	}

	if err := h.repo.Save(c.Request.Context(), story); err != nil {
		handleStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, story)
}

// HandleListStories обрабатывает GET /stories. Необязательный query-параметр
// user_id ограничивает выборку владельцем.
func (h *StoryHandler) HandleListStories(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			handleStoreError(c, h.logger, fmt.Errorf("%w: invalid user_id", models.ErrBadRequest))
			return
		}
		userID = &parsed
	}

	stories, err := h.repo.List(c.Request.Context(), userID)
	if err != nil {
		handleStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stories)
}

// HandleGetStory обрабатывает GET /stories/:id.
func (h *StoryHandler) HandleGetStory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleStoreError(c, h.logger, fmt.Errorf("%w: invalid story id", models.ErrBadRequest))
		return
	}

	story, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, story)
}

// HandleDeleteStory обрабатывает DELETE /stories/:id.
func (h *StoryHandler) HandleDeleteStory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleStoreError(c, h.logger, fmt.Errorf("%w: invalid story id", models.ErrBadRequest))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleStoreError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
