// Package llm wraps the language-model backends used for plan generation.
// Implement Provider to add a new backend.
package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured means credentials are missing or were rejected.
var ErrNotConfigured = errors.New("llm provider is not configured")

// ErrQuotaExceeded means the provider rate limit or quota was hit.
var ErrQuotaExceeded = errors.New("llm provider quota exceeded")

// Provider completes a system+user prompt pair into raw model text. The
// response is expected, but not guaranteed, to be a single JSON object;
// interpreting it is the caller's job.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ProviderType selects a backend in the factory.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)
