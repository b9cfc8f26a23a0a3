package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/strixlabs/switchboard/catalog"
)

// Config is the process-wide gateway configuration, read once from the
// environment at startup and immutable afterwards. A missing credential
// silently narrows the candidate set; only the absence of every credential
// is fatal, and that is enforced by the registry rather than here.
type Config struct {
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`
	XAIAPIKey       string `env:"XAI_API_KEY"`

	// MaxRetries is the number of re-attempts per candidate after the
	// first failure; a candidate is tried MaxRetries+1 times in total.
	MaxRetries int `env:"SWITCHBOARD_MAX_RETRIES, default=3"`

	// RetryDelay is the base wait between attempts; the actual wait is
	// RetryDelay multiplied by the attempt number (linear backoff).
	RetryDelay time.Duration `env:"SWITCHBOARD_RETRY_DELAY, default=2s"`

	// CallTimeout bounds a single backend call.
	CallTimeout time.Duration `env:"SWITCHBOARD_TIMEOUT, default=60s"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the orchestrator cannot work with.
func (c Config) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative")
	}
	if c.CallTimeout <= 0 {
		return fmt.Errorf("call timeout must be positive")
	}
	return nil
}

// Credential returns the API key configured for a provider, empty when the
// provider is not configured.
func (c Config) Credential(p catalog.Provider) string {
	switch p {
	case catalog.OpenAI:
		return c.OpenAIAPIKey
	case catalog.Anthropic:
		return c.AnthropicAPIKey
	case catalog.Google:
		return c.GoogleAPIKey
	case catalog.XAI:
		return c.XAIAPIKey
	}
	return ""
}
