package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"mailtriage/internal/config"
	"mailtriage/internal/services"
	"mailtriage/internal/triage"
)

// App holds the wired pipeline. Configuration is read once at startup and
// passed by reference; nothing here is ambient global state.
type App struct {
	Config *config.Config

	Completion services.CompletionService
	Classifier services.EmailClassifier
	Summarizer services.EmailSummarizer
	Triage     *triage.Service
}

// NewApp validates configuration and wires the pipeline. The credential
// check happens here, before any model call can be made, so a misconfigured
// process exits immediately instead of mid-batch.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{Config: cfg}

	if err := app.initCompletionService(ctx); err != nil {
		return nil, err
	}
	if err := app.initPipeline(); err != nil {
		return nil, err
	}

	log.Debug("application initialization complete")
	return app, nil
}

func (a *App) initCompletionService(ctx context.Context) error {
	switch a.Config.Provider {
	case "gemini":
		completer, err := services.NewGeminiProvider(ctx, a.Config.Gemini.APIKey, a.Config.Gemini.Model, a.Config.Request.Timeout)
		if err != nil {
			return fmt.Errorf("init Gemini completion provider: %w", err)
		}
		a.Completion = completer
	case "openai":
		completer, err := services.NewOpenAIProvider(a.Config.OpenAI.APIKey, a.Config.OpenAI.Model, a.Config.Request.Timeout)
		if err != nil {
			return fmt.Errorf("init OpenAI completion provider: %w", err)
		}
		a.Completion = completer
	default:
		// Validate() already rejects unknown providers; keep a guard anyway.
		return fmt.Errorf("unknown provider %q", a.Config.Provider)
	}
	return nil
}

func (a *App) initPipeline() error {
	classificationPrompt, err := a.Config.ClassificationPrompt()
	if err != nil {
		return fmt.Errorf("load classification prompt: %w", err)
	}
	summaryPrompt, err := a.Config.SummaryPrompt()
	if err != nil {
		return fmt.Errorf("load summary prompt: %w", err)
	}

	a.Classifier = services.NewLLMClassifier(a.Completion, classificationPrompt, a.Config.Retry)
	a.Summarizer = services.NewLLMSummarizer(a.Completion, summaryPrompt, a.Config.Retry)
	a.Triage = triage.New(a.Classifier, a.Summarizer)
	return nil
}

// Close releases provider resources.
func (a *App) Close() error {
	if closer, ok := a.Completion.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
