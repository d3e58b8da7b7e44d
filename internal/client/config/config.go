// Package config загружает настройки клиента.
// Источники по возрастанию приоритета: значения по умолчанию, YAML файл
// (если указан), переменные окружения STUDENTDESK_*. Флаги командной строки
// применяются поверх в cmd/client.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config настройки клиента
type Config struct {
	// ServerURL адрес backend вместе с префиксом /api
	ServerURL string `yaml:"server_url" env:"STUDENTDESK_SERVER" env-default:"http://localhost:3001/api" env-description:"backend address with /api prefix" validate:"required,url"`

	// DBPath путь к файлу bbolt с сохраненной сессией
	DBPath string `yaml:"db_path" env:"STUDENTDESK_DB" env-default:"studentdesk.db" env-description:"session database file"`

	// LogLevel уровень логирования: debug, info, warn, error
	LogLevel string `yaml:"log_level" env:"STUDENTDESK_LOG_LEVEL" env-default:"warn" env-description:"log level: debug, info, warn, error" validate:"oneof=debug info warn error"`

	// Timeout таймаут одного HTTP запроса
	Timeout time.Duration `yaml:"timeout" env:"STUDENTDESK_TIMEOUT" env-default:"30s" env-description:"HTTP request timeout" validate:"gt=0"`

	// RateLimit максимум запросов в секунду к backend, 0 без ограничения
	RateLimit float64 `yaml:"rate_limit" env:"STUDENTDESK_RATE_LIMIT" env-default:"0" env-description:"max requests per second, 0 disables the limit" validate:"gte=0"`

	// RateBurst допустимая пачка запросов при включенном RateLimit
	RateBurst int `yaml:"rate_burst" env:"STUDENTDESK_RATE_BURST" env-default:"5" env-description:"request burst for the rate limit" validate:"gte=1"`

	// Ephemeral хранить сессию только в памяти процесса
	Ephemeral bool `yaml:"ephemeral" env:"STUDENTDESK_EPHEMERAL" env-description:"keep the session in memory only"`
}

// Load читает конфигурацию. Пустой path означает: только окружение и значения по умолчанию.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения после применения всех источников
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel возвращает уровень логирования для slog
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Usage описание переменных окружения для справки
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
