package prompt_fx

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/fx"

	"oncocare/internal/config"
	"oncocare/internal/prompts"
	"oncocare/pkg/llm"
)

var Module = fx.Provide(
	ProvideGateway,
	prompts.NewRegistry)

// ProvideGateway builds the configured provider client wrapped in the retry
// policy. The Gemini client is closed on shutdown.
func ProvideGateway(lc fx.Lifecycle, cfg *config.Config) (llm.Gateway, error) {
	c := cfg.LLM
	log.Printf("[INFO] Initializing %s language model client with model: %s", c.Provider, c.Model)

	var base llm.Gateway
	switch c.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		base = llm.NewOpenAIGateway(c.Provider, c.APIKey, c.BaseURL, c.Model)
	case config.ProviderGemini:
		g, err := llm.NewGeminiGateway(context.Background(), c.APIKey, c.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return g.Close() }})
		base = g
	case config.ProviderAnthropic:
		base = llm.NewAnthropicGateway(c.APIKey, c.Model)
	case config.ProviderOllama:
		g, err := llm.NewOllamaGateway(c.BaseURL, c.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		base = g
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", c.Provider)
	}

	return llm.WithRetry(base, llm.RetryPolicy{
		MaxAttempts: c.MaxAttempts,
		Backoff:     c.Backoff,
		Timeout:     c.Timeout,
	}), nil
}
