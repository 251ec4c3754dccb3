package llm

import (
	"context"
	"fmt"

	"github.com/obrev/obrev/internal/store"
)

// NewProvider builds the configured provider and wraps it so every call
// runs through retry and request logging. The mock provider is returned
// bare; tests want its raw behavior.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	// Logging sits inside retry so each attempt gets its own event.
	return WithRetry(WithLogging(base, cfg.Provider, eventRepo), cfg.Retry), nil
}
