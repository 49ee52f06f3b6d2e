package services

import (
	"context"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	log "github.com/sirupsen/logrus"

	"mailtriage/internal/models"
	"mailtriage/internal/retry"
	"mailtriage/pkg/jsonextract"
)

// EmailSummarizer produces a one-sentence summary and a short suggested
// reply. Summarization is best-effort: it never returns an error, falling
// back to fixed PT-BR placeholders instead, so a message that was already
// classified always gets a complete record.
type EmailSummarizer interface {
	Summarize(ctx context.Context, email models.Email) models.Summary
}

// Fixed PT-BR fallback pairs; these are part of the output contract.
var (
	emptyBodySummary = models.Summary{
		Resumo:   "Texto vazio; é necessário mais contexto do cliente.",
		Resposta: "Poderia fornecer mais detalhes (ex.: número do pedido e descrição do ocorrido) para ajudarmos com precisão?",
	}
	// FallbackSummary replaces model output that could not be normalized. It
	// is also what the pipeline uses when a whole message degrades.
	FallbackSummary = models.Summary{
		Resumo:   "Conteúdo não pôde ser resumido com segurança.",
		Resposta: "Agradecemos a mensagem. Pode compartilhar mais detalhes para apoiarmos melhor?",
	}
)

const (
	defaultResumo   = "Resumo indisponível."
	defaultResposta = "Agradecemos a mensagem. Em breve retornaremos com mais informações."
)

// LLMSummarizer implements EmailSummarizer on top of a CompletionService.
type LLMSummarizer struct {
	completer      CompletionService
	promptTemplate string
	retryPolicy    retry.Policy
}

func NewLLMSummarizer(completer CompletionService, promptTemplate string, policy retry.Policy) *LLMSummarizer {
	return &LLMSummarizer{
		completer:      completer,
		promptTemplate: promptTemplate,
		retryPolicy:    policy,
	}
}

func (s *LLMSummarizer) Summarize(ctx context.Context, email models.Email) models.Summary {
	// Empty bodies get the fixed "need more detail" pair without a model call.
	if strings.TrimSpace(email.Body) == "" {
		return emptyBodySummary
	}

	prompt := strings.ReplaceAll(s.promptTemplate, "{{texto}}", email.Body)

	var parsed struct {
		Resumo   string `json:"resumo"`
		Resposta string `json:"resposta"`
	}
	decode := func(raw string) error {
		return jsonextract.Unmarshal(raw, &parsed)
	}

	if err := generateJSON(ctx, s.completer, s.retryPolicy, prompt, SummarizationParams, decode); err != nil {
		log.WithError(err).Warnf("summary for id=%s unavailable, using fallback texts", email.ID)
		return FallbackSummary
	}

	resumo := strings.TrimSpace(parsed.Resumo)
	if resumo == "" {
		resumo = defaultResumo
	} else {
		resumo = firstSentence(resumo)
	}
	resposta := strings.TrimSpace(parsed.Resposta)
	if resposta == "" {
		resposta = defaultResposta
	}
	return models.Summary{Resumo: resumo, Resposta: resposta}
}

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
)

// sentenceTokenizer builds the trained tokenizer once. The constructor needs
// non-nil training data; without it the annotation pass dereferences a nil
// Storage on the first period-final token.
func sentenceTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			log.WithError(err).Warn("sentence tokenizer unavailable, summaries will not be trimmed")
			return
		}
		tokenizer = t
	})
	return tokenizer
}

// firstSentence trims a summary down to its first sentence. The prompt
// contract is "1 frase"; models occasionally return more.
func firstSentence(text string) string {
	t := sentenceTokenizer()
	if t == nil {
		return text
	}
	parts := t.Tokenize(text)
	if len(parts) == 0 {
		return text
	}
	return strings.TrimSpace(parts[0].Text)
}

var _ EmailSummarizer = (*LLMSummarizer)(nil)
