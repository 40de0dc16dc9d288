package handler

import (
	"errors"
	"net/http"

	"story-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Пользовательские сообщения путей генерации. Тексты 429/402 - часть
// wire-контракта, клиент показывает их как есть.
const (
	msgRateLimited     = "Rate limit exceeded. Please try again in a moment."
	msgPaymentRequired = "Payment required. Please add credits to continue."
	msgAIKeyMissing    = "AI API key is not configured"
	msgUnexpected      = "An unexpected error occurred"
)

// respondGenerationError переводит ошибку таксономии в HTTP ответ {error}.
// Детали upstream-ошибок наружу не уходят: они уже залогированы на уровне
// AI клиента, клиент получает стабильное сообщение и правильный статус.
func respondGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrAIKeyMissing):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgAIKeyMissing})
	case errors.Is(err, models.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: msgRateLimited})
	case errors.Is(err, models.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse{Error: msgPaymentRequired})
	default:
		// ErrGateway, ErrEmptyCompletion и все неклассифицированное
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgUnexpected})
	}
}

// handleStoreError - маппинг ошибок хранилища историй.
func handleStoreError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrStoryNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Story not found"})
	case errors.Is(err, models.ErrBadRequest):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Unhandled story store error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "An unexpected internal error occurred"})
	}
}
