package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds every setting the portal reads from the environment.
type Config struct {
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	// Identity provider
	IdentityPublishableKey string `envconfig:"IDENTITY_PUBLISHABLE_KEY" required:"true"`
	IdentitySecretKey      string `envconfig:"IDENTITY_SECRET_KEY" required:"true"`
	IdentityIssuer         string `envconfig:"IDENTITY_ISSUER"`

	// Data store
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Completion service
	LLMProvider    string        `envconfig:"LLM_PROVIDER" default:"openai"`
	LLMAPIKey      string        `envconfig:"LLM_API_KEY" required:"true"`
	LLMBaseURL     string        `envconfig:"LLM_BASE_URL" default:"https://openrouter.ai/api/v1"`
	LLMModel       string        `envconfig:"LLM_MODEL" default:"anthropic/claude-3.5-sonnet"`
	LLMTemperature float32       `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	LLMMaxTokens   int           `envconfig:"LLM_MAX_TOKENS" default:"1024"`
	LLMTimeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	LLMReferer     string        `envconfig:"LLM_REFERER" default:"https://ai-agency-portal.vercel.app"`
	LLMAppTitle    string        `envconfig:"LLM_APP_TITLE" default:"AI Agency Portal"`

	// HTTP surface
	ChatRatePerMinute int    `envconfig:"CHAT_RATE_PER_MINUTE" default:"20"`
	ChatRateBurst     int    `envconfig:"CHAT_RATE_BURST" default:"5"`
	HistoryLimit      int    `envconfig:"HISTORY_LIMIT" default:"100"`
	CORSAllowOrigins  string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the cross-field rules envconfig tags cannot express.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER: %s", c.StoreDriver)
	}

	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive")
	}
	if c.ChatRatePerMinute <= 0 || c.ChatRateBurst <= 0 {
		return fmt.Errorf("CHAT_RATE_PER_MINUTE and CHAT_RATE_BURST must be positive")
	}

	return nil
}

// IsProduction reports whether ENV names the production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// MigrateConfig is the subset of the environment cmd/migrate needs.
type MigrateConfig struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
}

func LoadMigrateConfig() (*MigrateConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	var cfg MigrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
