package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"mailtriage/internal/models"
)

// GeminiProvider implements CompletionService using the Google Gemini API.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiProvider creates a new Gemini completion provider. The API key is
// required; callers are expected to have validated configuration before this
// point so no model call is ever attempted without a credential.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: Gemini API key not provided", models.ErrMissingCredential)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini provider initialized with model %s", modelName)

	return &GeminiProvider{
		client:  client,
		model:   modelName,
		timeout: timeout,
	}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// ModelName returns the specific model identifier.
func (p *GeminiProvider) ModelName() string { return p.model }

// GenerateCompletion runs a single generation with the fixed sampling
// parameters for the call type. The per-call timeout bounds the request so a
// hung backend cannot stall the pipeline.
func (p *GeminiProvider) GenerateCompletion(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("%w: Gemini provider is not initialized", models.ErrModelCall)
	}

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(params.Temperature)
	model.SetTopP(params.TopP)
	model.SetMaxOutputTokens(params.MaxOutputTokens)

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate content: %v", models.ErrModelCall, err)
	}

	text := collectText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response from model", models.ErrModelCall)
	}
	return strings.TrimSpace(text), nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

// Status returns the operational status of the provider.
func (p *GeminiProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

var _ CompletionService = (*GeminiProvider)(nil)
