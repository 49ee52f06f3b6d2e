package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/config"
	"mailtriage/internal/mailbox"
	"mailtriage/internal/models"
	"mailtriage/internal/retry"
	"mailtriage/internal/services"
)

// scriptedCompletion answers classification and summary prompts with canned
// valid JSON, distinguishing the two by the schema snippet each prompt
// template carries. failWhenBodyContains simulates a dead backend for every
// call whose prompt mentions the given substring.
type scriptedCompletion struct {
	calls                int
	failWhenBodyContains string
}

func (s *scriptedCompletion) GenerateCompletion(ctx context.Context, prompt string, params services.GenerationParams) (string, error) {
	s.calls++
	if s.failWhenBodyContains != "" && strings.Contains(prompt, s.failWhenBodyContains) {
		return "", fmt.Errorf("%w: transporte indisponível", models.ErrModelCall)
	}
	if strings.Contains(prompt, `"resumo"`) {
		return `{"resumo":"Resumo do e-mail.","resposta":"Obrigado pela mensagem."}`, nil
	}
	return `{"categoria":"Dúvida","justificativa":"Pergunta do cliente"}`, nil
}

func (s *scriptedCompletion) Name() string                    { return "scripted" }
func (s *scriptedCompletion) ModelName() string               { return "scripted-model" }
func (s *scriptedCompletion) Status() services.ProviderStatus { return services.ProviderStatusActive }

type deadCompletion struct{ calls int }

func (d *deadCompletion) GenerateCompletion(ctx context.Context, prompt string, params services.GenerationParams) (string, error) {
	d.calls++
	return "", fmt.Errorf("%w: transporte indisponível", models.ErrModelCall)
}

func (d *deadCompletion) Name() string                    { return "dead" }
func (d *deadCompletion) ModelName() string               { return "dead-model" }
func (d *deadCompletion) Status() services.ProviderStatus { return services.ProviderStatusActive }

func fastPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 2, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond, Multiplier: 1.5}
}

func newService(completer services.CompletionService) *Service {
	classifier := services.NewLLMClassifier(completer, config.ClassificationPromptTemplate, fastPolicy())
	summarizer := services.NewLLMSummarizer(completer, config.SummaryPromptTemplate, fastPolicy())
	return New(classifier, summarizer)
}

func TestProcess_SingleEmail(t *testing.T) {
	svc := newService(&scriptedCompletion{})

	record, err := svc.Process(context.Background(), models.Email{ID: "eml-003", Body: "Como faço para trocar um item?"})

	require.NoError(t, err)
	assert.Equal(t, "eml-003", record.ID)
	assert.Equal(t, models.CategoryDuvida, record.Categoria)
	assert.Equal(t, models.Action{Acao: "responder_cliente", Template: "faq_basico"}, record.Acao)
	assert.Equal(t, "Resumo do e-mail.", record.Resumo)
	assert.Equal(t, "Obrigado pela mensagem.", record.Resposta)
}

func TestProcessAll_FixtureBatch(t *testing.T) {
	mock := &scriptedCompletion{}
	svc := newService(mock)
	emails := mailbox.Fixtures()
	require.Len(t, emails, 8)

	var out bytes.Buffer
	err := svc.ProcessAll(context.Background(), emails, &out, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 8, "exactly one output line per input e-mail")

	// Order of emission matches order of input, and every line is valid JSON.
	for i, line := range lines {
		var record models.Record
		require.NoError(t, json.Unmarshal([]byte(line), &record), "line %d is not valid JSON", i+1)
		assert.Equal(t, emails[i].ID, record.ID)
		assert.True(t, record.Categoria.IsValid())
	}

	// The empty-body fixture never reaches the model: 7 classification calls
	// plus 7 summary calls.
	assert.Equal(t, 14, mock.calls)
}

func TestProcessAll_EmptyBodyRecord(t *testing.T) {
	svc := newService(&scriptedCompletion{})

	var out bytes.Buffer
	err := svc.ProcessAll(context.Background(), []models.Email{
		{ID: "eml-001", Body: "O produto chegou quebrado."},
		{ID: "5", Body: ""},
	}, &out, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var record models.Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &record))
	assert.Equal(t, "5", record.ID)
	assert.Equal(t, models.CategoryDuvida, record.Categoria)
	assert.Equal(t, models.Action{Acao: "responder_cliente", Template: "faq_basico"}, record.Acao)
	assert.Equal(t, "Texto vazio; é necessário mais contexto do cliente.", record.Resumo)
}

func TestProcessAll_UTF8PreservedInOutput(t *testing.T) {
	svc := newService(&scriptedCompletion{})

	var out bytes.Buffer
	err := svc.ProcessAll(context.Background(), []models.Email{{ID: "eml-001", Body: "Dúvida sobre troca."}}, &out, nil)
	require.NoError(t, err)

	// Accented characters are emitted literally, not as \u escapes.
	assert.Contains(t, out.String(), `"categoria":"Dúvida"`)
}

func TestProcessAll_FirstMessageBackendFailureAborts(t *testing.T) {
	dead := &deadCompletion{}
	svc := newService(dead)

	var out bytes.Buffer
	err := svc.ProcessAll(context.Background(), mailbox.Fixtures(), &out, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrModelCall)
	assert.Empty(t, out.String(), "no partial records when the backend is unreachable from the start")
}

func TestProcessAll_LaterFailureDegradesToFallbackRecord(t *testing.T) {
	// The backend fails only for the second fixture's body; the batch still
	// emits a line for every input.
	mock := &scriptedCompletion{failWhenBodyContains: "Filtro por cor"}
	svc := newService(mock)

	emails := []models.Email{
		{ID: "eml-001", Body: "O produto chegou quebrado."},
		{ID: "eml-002", Subject: "Filtro por cor", Body: "Poderiam adicionar Filtro por cor na busca?"},
		{ID: "eml-003", Body: "Como faço para trocar um item?"},
	}

	var out bytes.Buffer
	err := svc.ProcessAll(context.Background(), emails, &out, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	var degraded models.Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &degraded))
	assert.Equal(t, "eml-002", degraded.ID)
	assert.Equal(t, models.CategoryDuvida, degraded.Categoria)
	assert.Equal(t, services.FallbackSummary.Resumo, degraded.Resumo)
}

func TestProcessAll_ProgressCallback(t *testing.T) {
	mock := &scriptedCompletion{failWhenBodyContains: "Filtro por cor"}
	svc := newService(mock)

	emails := []models.Email{
		{ID: "eml-001", Body: "O produto chegou quebrado."},
		{ID: "eml-002", Body: "Poderiam adicionar Filtro por cor na busca?"},
	}

	type event struct {
		id       string
		emitted  bool
		degraded bool
	}
	var events []event
	progress := func(email models.Email, record *models.Record, err error) {
		events = append(events, event{id: email.ID, emitted: record != nil, degraded: err != nil})
	}

	var out bytes.Buffer
	require.NoError(t, svc.ProcessAll(context.Background(), emails, &out, progress))

	// One notification per message, in input order; the degraded message is
	// flagged but still carries its emitted record.
	require.Len(t, events, 2)
	assert.Equal(t, event{id: "eml-001", emitted: true, degraded: false}, events[0])
	assert.Equal(t, event{id: "eml-002", emitted: true, degraded: true}, events[1])
}

func TestProcessAll_ProgressCalledOnAbort(t *testing.T) {
	svc := newService(&deadCompletion{})

	var calls int
	var lastErr error
	progress := func(email models.Email, record *models.Record, err error) {
		calls++
		lastErr = err
		assert.Nil(t, record)
	}

	var out bytes.Buffer
	err := svc.ProcessAll(context.Background(), mailbox.Fixtures(), &out, progress)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, lastErr, models.ErrModelCall)
}
