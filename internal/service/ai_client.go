package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"story-server/internal/config"
	"story-server/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "story_server_ai_requests_total",
			Help: "Total number of requests to the AI gateway.",
		},
		[]string{"model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "story_server_ai_request_duration_seconds",
			Help:    "Histogram of AI gateway request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
)

// AIClient - интерфейс для взаимодействия с AI шлюзом.
type AIClient interface {
	// GenerateText выполняет ОДИН синхронный запрос генерации.
	// Ретраев нет намеренно: upstream 429 отдается вызывающему как есть,
	// решение о повторе - на его стороне.
	GenerateText(ctx context.Context, instr Instructions) (string, error)
}

// openAIClient реализует AIClient поверх OpenAI-совместимого endpoint.
type openAIClient struct {
	client  *openaigo.Client // nil, если API ключ не задан
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewOpenAIClient создает клиент AI шлюза. Отсутствие API ключа не является
// ошибкой конструирования: клиент создается "пустым" и возвращает
// models.ErrAIKeyMissing на каждый вызов, не делая сетевых запросов.
func NewOpenAIClient(cfg *config.Config, logger *zap.Logger) AIClient {
	c := &openAIClient{
		model:   cfg.AIModel,
		timeout: cfg.AITimeout,
		logger:  logger.Named("AIClient"),
	}

	if cfg.AIAPIKey == "" {
		c.logger.Warn("AI API key is not configured; generation requests will fail with a configuration error")
		return c
	}

	clientConfig := openaigo.DefaultConfig(cfg.AIAPIKey)
	clientConfig.BaseURL = cfg.AIBaseURL
	c.client = openaigo.NewClientWithConfig(clientConfig)
	return c
}

func (c *openAIClient) GenerateText(ctx context.Context, instr Instructions) (string, error) {
	if c.client == nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "config_error"}).Inc()
		return "", models.ErrAIKeyMissing
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	startTime := time.Now()
	c.logger.Debug("Sending request to AI gateway",
		zap.String("model", c.model),
		zap.Int("system_prompt_bytes", len(instr.System)),
		zap.Int("user_prompt_bytes", len(instr.User)),
	)

	resp, err := c.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: c.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleSystem, Content: instr.System},
			{Role: openaigo.ChatMessageRoleUser, Content: instr.User},
		},
	})

	duration := time.Since(startTime)

	if err != nil {
		mapped := c.mapGatewayError(err, duration)
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": statusLabel(mapped)}).Inc()
		return "", mapped
	}

	// Индексация в отсутствующую структуру не должна ронять процесс:
	// пустой список choices - типизированная ошибка шлюза
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Error("AI gateway returned a well-formed response without completion text",
			zap.Duration("duration", duration))
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_empty_response"}).Inc()
		return "", models.ErrEmptyCompletion
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()
	aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(duration.Seconds())

	generatedText := resp.Choices[0].Message.Content
	c.logger.Debug("AI gateway response received",
		zap.Duration("duration", duration),
		zap.Int("response_chars", len(generatedText)),
	)
	if resp.Usage.TotalTokens > 0 {
		c.logger.Debug("AI usage",
			zap.Int("prompt_tokens", resp.Usage.PromptTokens),
			zap.Int("completion_tokens", resp.Usage.CompletionTokens),
			zap.Int("total_tokens", resp.Usage.TotalTokens),
		)
	}

	return generatedText, nil
}

// mapGatewayError переводит ошибку транспорта/провайдера в таксономию сервиса.
// 429 и 402 - особые случаи с собственными статусами; все остальное, включая
// таймаут, становится общей ошибкой шлюза (наружу - generic 500, статус и
// тело upstream остаются в логах).
func (c *openAIClient) mapGatewayError(err error, duration time.Duration) error {
	var apiErr *openaigo.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429:
			c.logger.Warn("AI gateway rate limited", zap.Duration("duration", duration))
			return fmt.Errorf("%w: %v", models.ErrRateLimited, err)
		case 402:
			c.logger.Warn("AI gateway requires payment", zap.Duration("duration", duration))
			return fmt.Errorf("%w: %v", models.ErrPaymentRequired, err)
		default:
			c.logger.Error("AI gateway error",
				zap.Int("upstream_status", apiErr.HTTPStatusCode),
				zap.String("upstream_message", apiErr.Message),
				zap.Duration("duration", duration),
			)
			return fmt.Errorf("%w: upstream status %d", models.ErrGateway, apiErr.HTTPStatusCode)
		}
	}

	var reqErr *openaigo.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case 429:
			c.logger.Warn("AI gateway rate limited", zap.Duration("duration", duration))
			return fmt.Errorf("%w: %v", models.ErrRateLimited, err)
		case 402:
			c.logger.Warn("AI gateway requires payment", zap.Duration("duration", duration))
			return fmt.Errorf("%w: %v", models.ErrPaymentRequired, err)
		}
		c.logger.Error("AI gateway request error",
			zap.Int("upstream_status", reqErr.HTTPStatusCode),
			zap.Error(reqErr.Err),
			zap.Duration("duration", duration),
		)
		return fmt.Errorf("%w: upstream status %d", models.ErrGateway, reqErr.HTTPStatusCode)
	}

	// Сетевая ошибка или истекший таймаут
	c.logger.Error("AI gateway transport error", zap.Error(err), zap.Duration("duration", duration))
	return fmt.Errorf("%w: %v", models.ErrGateway, err)
}

func statusLabel(err error) string {
	switch {
	case errors.Is(err, models.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, models.ErrPaymentRequired):
		return "payment_required"
	default:
		return "error"
	}
}
