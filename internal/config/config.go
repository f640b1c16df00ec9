package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultSystemPrompt es la instruccion fija que se antepone a cada conversacion.
const DefaultSystemPrompt = "You are a helpful customer support assistant. " +
	"Answer clearly and concisely, use markdown for lists, steps and code, " +
	"and say so when you do not know the answer instead of guessing."

const (
	LLMBackendHTTP      = "http"
	LLMBackendLangChain = "langchain"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	LLMAPIKey          string        `env:"LLM_API_KEY,required,notEmpty"`
	LLMBaseURL         string        `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel           string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMBackend         string        `env:"LLM_BACKEND" envDefault:"http"`
	LLMTemperature     float64       `env:"LLM_TEMPERATURE" envDefault:"0.5"`
	LLMMaxTokens       int           `env:"LLM_MAX_TOKENS" envDefault:"1000"`
	LLMTimeout         time.Duration `env:"LLM_TIMEOUT" envDefault:"0s"`
	SystemPrompt       string        `env:"SYSTEM_PROMPT"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
}

// ClientConfig configura el cliente de chat de terminal.
type ClientConfig struct {
	RelayURL        string        `env:"RELAY_URL" envDefault:"http://localhost:8080"`
	RelayTimeout    time.Duration `env:"RELAY_TIMEOUT" envDefault:"0s"`
	FeedbackEnabled bool          `env:"FEEDBACK_ENABLED" envDefault:"true"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	return &cfg, nil
}

// LoadClientConfig carga la configuración del cliente desde variables de entorno.
func LoadClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
