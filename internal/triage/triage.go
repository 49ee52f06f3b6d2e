// Package triage orchestrates the per-message pipeline: classify, route,
// summarize, emit. Messages are processed strictly one at a time; the order
// of emitted records matches the order of input.
package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mailtriage/internal/models"
	"mailtriage/internal/routing"
	"mailtriage/internal/services"
)

type Service struct {
	classifier services.EmailClassifier
	summarizer services.EmailSummarizer
}

func New(classifier services.EmailClassifier, summarizer services.EmailSummarizer) *Service {
	return &Service{
		classifier: classifier,
		summarizer: summarizer,
	}
}

// Process runs one e-mail through the full pipeline. The only error it
// returns is a model-call failure that survived the classifier's retry
// budget; summarization failures are absorbed into fallback texts upstream.
func (s *Service) Process(ctx context.Context, email models.Email) (*models.Record, error) {
	classification, err := s.classifier.Classify(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("classify id=%s: %w", email.ID, err)
	}

	action := routing.Route(classification.Categoria)
	summary := s.summarizer.Summarize(ctx, email)

	return &models.Record{
		ID:        email.ID,
		Categoria: classification.Categoria,
		Acao:      action,
		Resumo:    summary.Resumo,
		Resposta:  summary.Resposta,
	}, nil
}

// Progress is called after each message is processed. record is the emitted
// record (nil when the run aborts); err is non-nil when the message degraded
// to a fallback record or aborted the run.
type Progress func(email models.Email, record *models.Record, err error)

// ProcessAll runs the pipeline over emails sequentially and writes one JSON
// record per line to w, in input order. Every input yields exactly one line.
// progress may be nil.
//
// A model failure that exhausts its retries on the very first message aborts
// the whole run, since the backend is evidently unreachable. On a later
// message the failure is logged and the record degrades to the fallback
// category so the batch still completes with a line per input.
func (s *Service) ProcessAll(ctx context.Context, emails []models.Email, w io.Writer, progress Progress) error {
	if progress == nil {
		progress = func(models.Email, *models.Record, error) {}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	runID := uuid.NewString()
	runLog := log.WithField("run_id", runID)
	runLog.Infof("processing %d messages", len(emails))

	for i, email := range emails {
		runLog.Infof("processing id=%s subject=%q", email.ID, email.Subject)

		record, err := s.Process(ctx, email)
		if err != nil {
			if i == 0 {
				progress(email, nil, err)
				return fmt.Errorf("model backend unreachable on first message: %w", err)
			}
			runLog.WithError(err).Errorf("model unavailable for id=%s, emitting fallback record", email.ID)
			record = fallbackRecord(email)
		}

		if encErr := enc.Encode(record); encErr != nil {
			return fmt.Errorf("encode record id=%s: %w", email.ID, encErr)
		}
		progress(email, record, err)
	}
	return nil
}

// fallbackRecord degrades a message whose classification call failed outright
// into the deterministic fallback shape, so the batch never silently drops an
// input.
func fallbackRecord(email models.Email) *models.Record {
	return &models.Record{
		ID:        email.ID,
		Categoria: models.CategoryFallback,
		Acao:      routing.Route(models.CategoryFallback),
		Resumo:    services.FallbackSummary.Resumo,
		Resposta:  services.FallbackSummary.Resposta,
	}
}
