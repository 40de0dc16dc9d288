package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"story-server/internal/models"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Адресат фиксирован: письмо - служебное уведомление оператору,
// а не сообщение конечному пользователю.
const (
	operatorMailbox = "mohdmaazgani@gmail.com"
	senderAddress   = "Story Generator <onboarding@resend.dev>"
)

// StoryEmail - данные для письма о сгенерированной истории.
type StoryEmail struct {
	StoryContent  string
	Genre         string
	Theme         string
	CharacterType string
	Title         string
	UserEmail     string
	UserName      string
}

// EmailSender отправляет уведомление оператору об одной сгенерированной истории.
// Возвращает идентификатор письма у провайдера.
type EmailSender interface {
	SendStoryNotification(ctx context.Context, email StoryEmail) (string, error)
}

type resendSender struct {
	client *resend.Client // nil, если API ключ не задан
	logger *zap.Logger
}

// NewResendSender создает отправителя почты через Resend. Как и у AI клиента,
// отсутствие ключа откладывается до вызова: models.ErrResendKeyMissing.
func NewResendSender(apiKey string, logger *zap.Logger) EmailSender {
	s := &resendSender{logger: logger.Named("ResendSender")}
	if apiKey == "" {
		s.logger.Warn("Resend API key is not configured; story email notifications will fail with a configuration error")
		return s
	}
	s.client = resend.NewClient(apiKey)
	return s
}

func (s *resendSender) SendStoryNotification(ctx context.Context, email StoryEmail) (string, error) {
	if s.client == nil {
		return "", models.ErrResendKeyMissing
	}

	params := &resend.SendEmailRequest{
		From:    senderAddress,
		To:      []string{operatorMailbox},
		Subject: fmt.Sprintf("New Story Generated: %s", email.Title),
		Html:    buildStoryEmailHTML(email),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("Resend API error", zap.Error(err))
		return "", fmt.Errorf("%w: %v", models.ErrEmailSendFailed, err)
	}

	s.logger.Info("Story notification email sent", zap.String("email_id", sent.Id))
	return sent.Id, nil
}

// buildStoryEmailHTML собирает HTML письма. Содержимое истории вставляется
// как есть: по контракту генерации это HTML-фрагмент с <b>/<i>/<u>.
func buildStoryEmailHTML(email StoryEmail) string {
	var details strings.Builder
	fmt.Fprintf(&details, "<p><strong>Title:</strong> %s</p>", email.Title)
	fmt.Fprintf(&details, "<p><strong>Genre:</strong> %s</p>", email.Genre)
	fmt.Fprintf(&details, "<p><strong>Theme:</strong> %s</p>", email.Theme)
	fmt.Fprintf(&details, "<p><strong>Character Type:</strong> %s</p>", email.CharacterType)
	if email.UserEmail != "" {
		fmt.Fprintf(&details, "<p><strong>User Email:</strong> %s</p>", email.UserEmail)
	}
	if email.UserName != "" {
		fmt.Fprintf(&details, "<p><strong>User Name:</strong> %s</p>", email.UserName)
	} else {
		details.WriteString("<p><em>Anonymous user</em></p>")
	}
	fmt.Fprintf(&details, "<p><strong>Generated:</strong> %s</p>", time.Now().Format("02 Jan 2006 15:04:05 MST"))

	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
          <h1 style="color: #333; border-bottom: 2px solid #8B4513; padding-bottom: 10px;">New Story Generated</h1>

          <div style="background: #f9f9f9; padding: 15px; margin: 20px 0; border-radius: 5px;">
            <h2 style="color: #8B4513; margin-top: 0;">Story Details</h2>
            %s
          </div>

          <div style="background: #fff; padding: 20px; border-left: 4px solid #8B4513; margin: 20px 0;">
            <h2 style="color: #8B4513; margin-top: 0;">Story Content</h2>
            <div style="line-height: 1.6; color: #333;">
              %s
            </div>
          </div>

          <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px;">
            <p>This email was sent automatically from your Story Generator application.</p>
          </div>
        </div>
      `, details.String(), email.StoryContent)
}
