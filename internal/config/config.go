package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"story-server/internal/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"debug"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Настройки AI шлюза (OpenAI-совместимый chat completions endpoint)
	AIBaseURL string        `envconfig:"AI_BASE_URL" default:"https://ai.gateway.lovable.dev/v1"`
	AIModel   string        `envconfig:"AI_MODEL" default:"google/gemini-2.5-flash"`
	AITimeout time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	// Секретное поле БЕЗ envconfig тега. Может быть пустым: отсутствие ключа -
	// ошибка конфигурации на уровне запроса, а не причина не стартовать.
	AIAPIKey string

	// Секретное поле БЕЗ envconfig тега (Resend). Тоже может быть пустым.
	ResendAPIKey string

	// Настройки PostgreSQL (хранилище сохраненных историй)
	DBHost        string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" default:"postgres"`
	DBName        string        `envconfig:"DB_NAME" default:"story_db"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_MAX_IDLE_MINUTES" default:"5m"`
	// Секретное поле БЕЗ envconfig тега
	DBPassword string

	// Redis (rate limiter)
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`
	// Секретное поле БЕЗ envconfig тега (если пароль используется)
	RedisPassword string

	// Лимит запросов генерации с одного IP в минуту
	RateLimitPerMinute int64 `envconfig:"RATE_LIMIT_PER_MINUTE" default:"10"`
}

// GetDSN возвращает строку подключения (DSN) для PostgreSQL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// LoadConfig загружает конфигурацию из переменных окружения и секретов.
func LoadConfig(envFilePath string) (*Config, error) {
	// Пытаемся загрузить .env файл (локальный запуск); в контейнере его обычно нет
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
		} else {
			log.Printf("Loaded configuration from %s", envFilePath)
		}
	}

	var cfg Config
	// Загружаем НЕсекретные переменные
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	// Пароль БД обязателен: без него хранилище историй не поднимется
	var loadErr error
	cfg.DBPassword, loadErr = utils.ReadSecret("db_password", "DB_PASSWORD")
	if loadErr != nil {
		return nil, loadErr
	}

	// Ключи провайдеров намеренно необязательные: их отсутствие превращается
	// в ошибку конфигурации для конкретного запроса (см. internal/service)
	cfg.AIAPIKey = utils.ReadSecretOptional("ai_api_key", "AI_API_KEY")
	cfg.ResendAPIKey = utils.ReadSecretOptional("resend_api_key", "RESEND_API_KEY")
	cfg.RedisPassword = utils.ReadSecretOptional("redis_password", "REDIS_PASSWORD")

	// Логируем загруженную конфигурацию (кроме паролей/ключей)
	log.Printf("Конфигурация загружена:")
	log.Printf("  Env: %s, LogLevel: %s, Port: %s", cfg.Env, cfg.LogLevel, cfg.ServerPort)
	log.Printf("  AI Base URL: %s", cfg.AIBaseURL)
	log.Printf("  AI Model: %s", cfg.AIModel)
	log.Printf("  AI Timeout: %v", cfg.AITimeout)
	log.Printf("  AI API Key: %s", loadedOrNot(cfg.AIAPIKey))
	log.Printf("  Resend API Key: %s", loadedOrNot(cfg.ResendAPIKey))
	log.Printf("  DB DSN: %s", cfg.getMaskedDSN())
	log.Printf("  Redis Addr: %s (db %d)", cfg.RedisAddr, cfg.RedisDB)
	log.Printf("  Rate Limit: %d req/min", cfg.RateLimitPerMinute)

	return &cfg, nil
}

func loadedOrNot(secret string) string {
	if secret == "" {
		return "[НЕ ЗАДАН]"
	}
	return "[ЗАГРУЖЕН]"
}

// getMaskedDSN возвращает DSN с замаскированным паролем для логирования.
func (c *Config) getMaskedDSN() string {
	dsn := c.GetDSN()
	parts := strings.Split(dsn, "@")
	if len(parts) != 2 {
		return "[invalid dsn format]"
	}
	userInfo := strings.Split(parts[0], ":")
	if len(userInfo) >= 2 {
		userInfo[len(userInfo)-1] = "********"
	}
	return strings.Join(userInfo, ":") + "@" + parts[1]
}
