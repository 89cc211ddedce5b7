package llm

import (
	"fmt"
	"strings"
)

// Config holds LLM provider configuration
type Config struct {
	Provider ProviderType // "openai" or "gemini"
	Model    string

	OpenAIAPIKey string
	GeminiAPIKey string
}

// NewProvider creates a Provider based on the config. Missing API keys are
// not an error here; providers report ErrNotConfigured at call time so a
// misconfigured server still starts and surfaces an actionable message.
func NewProvider(cfg Config) (Provider, error) {
	switch ProviderType(strings.ToLower(string(cfg.Provider))) {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.Model), nil
	case ProviderGemini:
		return NewGeminiProvider(cfg.GeminiAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
