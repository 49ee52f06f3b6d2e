package services

import (
	"context"
)

// ProviderStatus reports whether a completion provider is usable.
type ProviderStatus string

const (
	ProviderStatusActive   ProviderStatus = "active"
	ProviderStatusDisabled ProviderStatus = "disabled"
)

// GenerationParams are the sampling parameters for one completion call.
// They are fixed per call type (classification vs. summarization) and are not
// tunable at call time.
type GenerationParams struct {
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

// ClassificationParams keeps the classifier deterministic-ish: low
// temperature, narrow nucleus.
var ClassificationParams = GenerationParams{Temperature: 0.2, TopP: 0.3, MaxOutputTokens: 256}

// SummarizationParams allows a little more freedom for prose generation.
var SummarizationParams = GenerationParams{Temperature: 0.4, TopP: 0.5, MaxOutputTokens: 512}

// CompletionService defines the interface for generating text completions.
// One outbound network call per invocation; no caching, no deduplication.
// Implementations return an error wrapping models.ErrModelCall for empty
// responses, transport failures and non-success statuses.
type CompletionService interface {
	GenerateCompletion(ctx context.Context, prompt string, params GenerationParams) (string, error)
	Status() ProviderStatus
	Name() string      // Provider name (e.g., "openai", "gemini")
	ModelName() string // Specific model used
}
