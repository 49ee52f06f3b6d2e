package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"mailtriage/internal/models"
	"mailtriage/internal/retry"
	"mailtriage/pkg/jsonextract"
)

// EmailClassifier assigns one of the closed categories to an e-mail.
type EmailClassifier interface {
	Classify(ctx context.Context, email models.Email) (models.Classification, error)
}

// Fixed PT-BR fallback strings; these are part of the output contract.
const (
	emptyBodyJustification   = "Texto vazio ou incompreensível"
	unparseableJustification = "Falha ao interpretar resposta do modelo"
	defaultJustification     = "Classificação automática"
)

// LLMClassifier implements EmailClassifier on top of a CompletionService.
// The only error it returns is a model-call failure after the transient
// retry budget is exhausted; every content-level failure (unparseable output,
// category outside the vocabulary, failed repair) is absorbed into the
// deterministic fallback classification.
type LLMClassifier struct {
	completer      CompletionService
	promptTemplate string
	retryPolicy    retry.Policy
}

func NewLLMClassifier(completer CompletionService, promptTemplate string, policy retry.Policy) *LLMClassifier {
	return &LLMClassifier{
		completer:      completer,
		promptTemplate: promptTemplate,
		retryPolicy:    policy,
	}
}

func (c *LLMClassifier) Classify(ctx context.Context, email models.Email) (models.Classification, error) {
	// Deterministic edge case: an empty body is never sent to the model.
	if strings.TrimSpace(email.Body) == "" {
		return models.Classification{
			Categoria:     models.CategoryFallback,
			Justificativa: emptyBodyJustification,
		}, nil
	}

	prompt := strings.ReplaceAll(c.promptTemplate, "{{texto}}", email.Body)

	var (
		category models.Category
		parsed   struct {
			Categoria     string `json:"categoria"`
			Justificativa string `json:"justificativa"`
		}
	)
	decode := func(raw string) error {
		if err := jsonextract.Unmarshal(raw, &parsed); err != nil {
			return err
		}
		cat, ok := models.ParseCategory(parsed.Categoria)
		if !ok {
			return fmt.Errorf("%w: category %q is outside the vocabulary", models.ErrValidation, parsed.Categoria)
		}
		category = cat
		return nil
	}

	if err := generateJSON(ctx, c.completer, c.retryPolicy, prompt, ClassificationParams, decode); err != nil {
		if errors.Is(err, models.ErrModelCall) {
			return models.Classification{}, err
		}
		log.WithError(err).Warnf("classification for id=%s could not be normalized, falling back to %q", email.ID, models.CategoryFallback)
		return models.Classification{
			Categoria:     models.CategoryFallback,
			Justificativa: unparseableJustification,
		}, nil
	}

	justificativa := strings.TrimSpace(parsed.Justificativa)
	if justificativa == "" {
		justificativa = defaultJustification
	}
	return models.Classification{Categoria: category, Justificativa: justificativa}, nil
}

var _ EmailClassifier = (*LLMClassifier)(nil)
