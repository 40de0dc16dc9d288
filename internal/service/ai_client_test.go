package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"story-server/internal/config"
	"story-server/internal/models"
	"story-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

// newGatewayStub поднимает httptest-сервер, имитирующий OpenAI-совместимый
// шлюз, и возвращает клиент, направленный на него, плюс счетчик запросов.
func newGatewayStub(t *testing.T, handler http.HandlerFunc) (service.AIClient, *int64) {
	t.Helper()

	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		AIAPIKey:  "test-key",
		AIBaseURL: server.URL + "/v1",
		AIModel:   "google/gemini-2.5-flash",
		AITimeout: 5 * time.Second,
	}
	return service.NewOpenAIClient(cfg, zap.NewNop()), &hits
}

func testInstructions() service.Instructions {
	return service.Instructions{System: "You are a storyteller.", User: "Write a story."}
}

func TestGenerateText_Success(t *testing.T) {
	client, hits := newGatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "google/gemini-2.5-flash",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "<b>Once</b> upon a time."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 120, "total_tokens": 140}
		}`))
	})

	text, err := client.GenerateText(context.Background(), testInstructions())

	require.NoError(t, err)
	assert.Equal(t, "<b>Once</b> upon a time.", text)
	assert.EqualValues(t, 1, atomic.LoadInt64(hits))
}

func TestGenerateText_RateLimited(t *testing.T) {
	client, _ := newGatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`))
	})

	_, err := client.GenerateText(context.Background(), testInstructions())

	assert.ErrorIs(t, err, models.ErrRateLimited)
}

func TestGenerateText_PaymentRequired(t *testing.T) {
	client, _ := newGatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "Insufficient credits", "type": "payment_error"}}`))
	})

	_, err := client.GenerateText(context.Background(), testInstructions())

	assert.ErrorIs(t, err, models.ErrPaymentRequired)
}

func TestGenerateText_UpstreamFailure(t *testing.T) {
	client, _ := newGatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	})

	_, err := client.GenerateText(context.Background(), testInstructions())

	// Любой статус, кроме 429/402, сворачивается в общую ошибку шлюза
	assert.ErrorIs(t, err, models.ErrGateway)
	assert.NotErrorIs(t, err, models.ErrRateLimited)
	assert.NotErrorIs(t, err, models.ErrPaymentRequired)
}

func TestGenerateText_EmptyChoices(t *testing.T) {
	client, _ := newGatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	})

	// Корректный по форме ответ без вариантов не должен ронять процесс
	_, err := client.GenerateText(context.Background(), testInstructions())

	assert.ErrorIs(t, err, models.ErrEmptyCompletion)
}

func TestGenerateText_MissingAPIKey(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		AIAPIKey:  "", // ключ не задан
		AIBaseURL: server.URL + "/v1",
		AIModel:   "google/gemini-2.5-flash",
		AITimeout: 5 * time.Second,
	}
	client := service.NewOpenAIClient(cfg, zap.NewNop())

	_, err := client.GenerateText(context.Background(), testInstructions())

	assert.ErrorIs(t, err, models.ErrAIKeyMissing)
	// Без ключа не должно быть ни одного исходящего запроса
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits))
}

func TestGenerateText_Timeout(t *testing.T) {
	done := make(chan struct{})
	client, _ := newGatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	})
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GenerateText(ctx, testInstructions())

	assert.ErrorIs(t, err, models.ErrGateway)
}
