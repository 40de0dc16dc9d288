package handler

import (
	"net/http"

	"story-server/internal/models"
	"story-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerationHandler обрабатывает HTTP запросы генерации историй и промптов.
type GenerationHandler struct {
	service *service.GenerationService
	logger  *zap.Logger
}

// NewGenerationHandler создает новый GenerationHandler.
func NewGenerationHandler(s *service.GenerationService, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{
		service: s,
		logger:  logger.Named("GenerationHandler"),
	}
}

// RegisterRoutes регистрирует маршруты генерации.
// rateLimitMiddleware может быть nil (тесты, локальный запуск без Redis).
func (h *GenerationHandler) RegisterRoutes(router gin.IRouter, rateLimitMiddleware gin.HandlerFunc) {
	if rateLimitMiddleware != nil {
		router.POST("/generate-story", rateLimitMiddleware, h.HandleGenerateStory)
		return
	}
	router.POST("/generate-story", h.HandleGenerateStory)
}

// HandleGenerateStory обрабатывает POST /generate-story.
// Запрос либо завершается одним полным успешным телом ({prompt} или
// {storyIdea}), либо одной ошибкой {error} - частичных результатов не бывает.
func (h *GenerationHandler) HandleGenerateStory(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid generation request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	outcome, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	switch outcome.Mode {
	case models.ModePrompt:
		c.JSON(http.StatusOK, models.PromptResult{Prompt: outcome.Text})
	default:
		c.JSON(http.StatusOK, models.StoryResult{StoryIdea: outcome.Text})
	}
}
