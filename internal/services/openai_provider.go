package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"mailtriage/internal/models"
)

// OpenAIProvider implements CompletionService using the OpenAI chat API. It
// exists so the pipeline can run against an OpenAI-compatible backend with
// the same contract as the Gemini provider.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIProvider creates a new OpenAI completion provider.
func NewOpenAIProvider(apiKey, modelName string, timeout time.Duration) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key not provided", models.ErrMissingCredential)
	}

	log.Infof("OpenAI provider initialized with model %s", modelName)

	return &OpenAIProvider{
		client:  openai.NewClient(apiKey),
		model:   modelName,
		timeout: timeout,
	}, nil
}

func (p *OpenAIProvider) Name() string      { return "openai" }
func (p *OpenAIProvider) ModelName() string { return p.model }

func (p *OpenAIProvider) GenerateCompletion(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("%w: OpenAI provider is not initialized", models.ErrModelCall)
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		MaxTokens:   int(params.MaxOutputTokens),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai completion: %v", models.ErrModelCall, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices returned", models.ErrModelCall)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty response from model", models.ErrModelCall)
	}
	return content, nil
}

func (p *OpenAIProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

var _ CompletionService = (*OpenAIProvider)(nil)
