package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures an LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string // default "claude-haiku"
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string // optional, for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string // default "gemini-flash"
}

// RetryConfig shapes the backoff used for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap model for each provider and a modest
// retry budget.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers OBREV_* environment variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setEnv(&cfg.Provider, "OBREV_LLM_PROVIDER")
	setEnv(&cfg.Anthropic.APIKey, "OBREV_ANTHROPIC_API_KEY")
	setEnv(&cfg.Anthropic.Model, "OBREV_ANTHROPIC_MODEL")
	setEnv(&cfg.OpenAI.APIKey, "OBREV_OPENAI_API_KEY")
	setEnv(&cfg.OpenAI.Model, "OBREV_OPENAI_MODEL")
	setEnv(&cfg.OpenAI.BaseURL, "OBREV_OPENAI_BASE_URL")
	setEnv(&cfg.Gemini.APIKey, "OBREV_GEMINI_API_KEY")
	setEnv(&cfg.Gemini.Model, "OBREV_GEMINI_MODEL")

	return cfg
}

func setEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' conventional API key variables in
// priority order (Gemini, then OpenAI, then Anthropic) so the app works
// without any OBREV_* configuration. The second return is false when no
// key is present.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env   string
		apply func(*Config, string)
	}{
		{"GEMINI_API_KEY", func(c *Config, k string) { c.Provider = "gemini"; c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", func(c *Config, k string) { c.Provider = "openai"; c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", func(c *Config, k string) { c.Provider = "anthropic"; c.Anthropic.APIKey = k }},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg := DefaultConfig()
			p.apply(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("OBREV_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OBREV_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("OBREV_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown llm provider %q", c.Provider)
	}
	return nil
}
