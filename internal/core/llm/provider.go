package llm

import (
	"context"
	"fmt"
)

// LLMProvider is implemented by every completion backend
type LLMProvider interface {
	Complete(ctx context.Context, req *CompletionRequest) (*Completion, error)
	GetProviderName() string
}

// ProviderType untuk factory
type ProviderType string

const (
	// ProviderOpenAI covers any OpenAI-compatible endpoint, OpenRouter included.
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)

type ProviderConfig struct {
	Type ProviderType

	APIKey  string
	BaseURL string

	// Sent as HTTP-Referer / X-Title, used by OpenRouter for attribution
	Referer  string
	AppTitle string

	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider factory untuk create LLM provider
func NewProvider(ctx context.Context, cfg *ProviderConfig) (LLMProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}

	switch cfg.Type {
	case ProviderOpenAI, "":
		return NewOpenAIProvider(cfg), nil

	case ProviderGemini:
		return NewGeminiProvider(ctx, cfg)

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}
