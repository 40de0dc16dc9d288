package handler

import (
	"errors"
	"net/http"

	"story-server/internal/models"
	"story-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler обрабатывает запросы на отправку письма оператору.
// Эндпоинт вызывается внешним клиентом отдельным запросом ПОСЛЕ того, как
// история уже отдана пользователю: его провал ни при каких условиях не
// влияет на результат генерации.
type NotificationHandler struct {
	sender service.EmailSender
	logger *zap.Logger
}

// NewNotificationHandler создает новый NotificationHandler.
func NewNotificationHandler(sender service.EmailSender, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		sender: sender,
		logger: logger.Named("NotificationHandler"),
	}
}

// RegisterRoutes регистрирует маршруты нотификаций.
func (h *NotificationHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/send-story-email", h.HandleSendStoryEmail)
}

// HandleSendStoryEmail обрабатывает POST /send-story-email.
func (h *NotificationHandler) HandleSendStoryEmail(c *gin.Context) {
	var req storyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid story email request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	h.logger.Info("Sending story email notification", zap.String("title", req.Title))

	emailID, err := h.sender.SendStoryNotification(c.Request.Context(), service.StoryEmail{
		StoryContent:  req.StoryContent,
		Genre:         req.Genre,
		Theme:         req.Theme,
		CharacterType: req.CharacterType,
		Title:         req.Title,
		UserEmail:     req.UserEmail,
		UserName:      req.UserName,
	})
	if err != nil {
		// Ошибка нотификации - телеметрия: логируем и отвечаем 500 на ЭТОТ
		// запрос, путь генерации об этом никогда не узнает
		h.logger.Error("Failed to send story email", zap.Error(err))
		if errors.Is(err, models.ErrResendKeyMissing) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Resend API key is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, models.EmailResponse{
		Success:     true,
		EmailResult: emailResult{ID: emailID},
	})
}
