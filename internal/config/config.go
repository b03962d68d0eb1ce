package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Журнал уведомлений в PostgreSQL, пустое значение отключает журнал
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config, пустой адрес отключает очередь уведомлений
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Генерация инцидентов
	InjectInterval    time.Duration `env:"INJECT_INTERVAL" envDefault:"30s"`
	InjectProbability float64       `env:"INJECT_PROBABILITY" envDefault:"0.3"`
	SeedIncidents     int           `env:"SEED_INCIDENTS" envDefault:"8"`
	SeedForces        int           `env:"SEED_FORCES" envDefault:"15"`
	RandomSeed        int64         `env:"RANDOM_SEED" envDefault:"0"`
	VocabularyFile    string        `env:"VOCABULARY_FILE"`

	// Ограничение частоты запросов на клиента
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		InjectInterval:    getEnvAsDuration("INJECT_INTERVAL", 30*time.Second),
		InjectProbability: getEnvAsFloat("INJECT_PROBABILITY", 0.3),
		SeedIncidents:     getEnvAsInt("SEED_INCIDENTS", 8),
		SeedForces:        getEnvAsInt("SEED_FORCES", 15),
		RandomSeed:        int64(getEnvAsInt("RANDOM_SEED", 0)),
		VocabularyFile:    os.Getenv("VOCABULARY_FILE"),
		RateLimitRPS:      getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 40),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений конфигурации
func (c *Config) Validate() error {
	var errs []error
	if c.InjectInterval <= 0 {
		errs = append(errs, fmt.Errorf("INJECT_INTERVAL must be positive, got %v", c.InjectInterval))
	}
	if c.InjectProbability < 0 || c.InjectProbability > 1 {
		errs = append(errs, fmt.Errorf("INJECT_PROBABILITY must be within [0, 1], got %v", c.InjectProbability))
	}
	if c.SeedIncidents < 0 {
		errs = append(errs, fmt.Errorf("SEED_INCIDENTS must not be negative, got %d", c.SeedIncidents))
	}
	if c.SeedForces < 0 {
		errs = append(errs, fmt.Errorf("SEED_FORCES must not be negative, got %d", c.SeedForces))
	}
	if c.WebhookMaxRetries < 1 {
		errs = append(errs, fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1, got %d", c.WebhookMaxRetries))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
