package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP listen address. Production deployments run on :8080; the
	// development .env overrides this to :4321.
	Address string `env:"ADDRESS" envDefault:":8080"`

	// LogLevel is a zerolog level name (trace, debug, info, ...).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Provider selects the text-generation backend: openai or anthropic.
	Provider string `env:"PROVIDER" envDefault:"openai"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	AnthropicKey  string `env:"ANTHROPIC_API_KEY"`

	// Generation parameters applied to every model call.
	ModelName      string        `env:"MODEL_NAME" envDefault:"gpt-4o-mini"`
	ModelTemp      float64       `env:"MODEL_TEMP" envDefault:"0"`
	ModelTopP      float64       `env:"MODEL_TOP_P" envDefault:"0.95"`
	ModelMaxTokens int64         `env:"MODEL_MAX_OUTPUT_TOKENS" envDefault:"1000"`
	ModelTimeout   time.Duration `env:"MODEL_TIMEOUT" envDefault:"60s"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
