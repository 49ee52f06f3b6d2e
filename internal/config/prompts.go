package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// The canonical PT-BR prompt templates. {{texto}} is replaced with the e-mail
// body at call time.

const ClassificationPromptTemplate = `Objetivo: receber texto de e-mail e retornar apenas JSON:

{"categoria":"<Reclamação|Sugestão|Dúvida|Elogio>","justificativa":"<1 frase>"}

Instruções do prompt (inclua literalmente):

Tarefa: classifique o e-mail exatamente em UMA das categorias: Reclamação, Sugestão, Dúvida, Elogio.

“Reclamação” = relato de problema/insatisfação; “Sugestão” = proposta de melhoria; “Dúvida” = pergunta/pedido de esclarecimento; “Elogio” = feedback positivo.

Responda apenas com JSON válido no formato especificado; não inclua texto adicional.

Se ambíguo entre duas categorias, escolha a mais consistente com a intenção principal.

Se o texto estiver vazio ou ilegível, retorne: {"categoria":"Dúvida","justificativa":"Texto vazio ou incompreensível"}.

Exemplos (few-shot):

Input: “O produto chegou quebrado e o suporte não respondeu.”
Output: {"categoria":"Reclamação","justificativa":"Relata defeito e falha no suporte"}

Input: “Seria ótimo ter filtro por tamanho nas buscas.”
Output: {"categoria":"Sugestão","justificativa":"Propõe melhoria de usabilidade"}

Input: “Qual é o prazo para troca de um item com defeito?”
Output: {"categoria":"Dúvida","justificativa":"Pergunta sobre política de troca"}

Input: “Equipe atenciosa e entrega rápida, parabéns!”
Output: {"categoria":"Elogio","justificativa":"Expressa satisfação e reconhecimento"}

[ENTRADA]
{{texto}}
`

const SummaryPromptTemplate = `Objetivo: receber texto de e-mail e retornar apenas JSON:

{"resumo":"<1 frase>","resposta":"<resposta curta e educada em PT-BR>"}

Instruções do prompt (inclua literalmente):

Faça um resumo em 1 frase, fiel ao conteúdo (sem inventar).

Gere uma resposta curta/educada, em PT-BR, neutra e objetiva; se houver nº de pedido mencionado, reconheça-o.

Proíba promessas sem base (não inventar prazos/status).

Responda apenas com JSON válido no formato especificado.

Se o texto estiver vazio, use resumo e resposta padrão solicitando mais detalhes.

Exemplo:

Input: “Pedido #12345 atrasado; paguei frete expresso; preciso até sábado.”
Output:

{"resumo":"Cliente relata atraso do pedido #12345 com frete expresso e urgência.","resposta":"Sentimos pelo transtorno. Já solicitamos a verificação do pedido #12345 e retornaremos com o status atualizado. Caso precise de alternativa imediata, avise por favor."}

[ENTRADA]
{{texto}}
`

// RepairPromptInstruction asks the model to rewrite its own malformed prior
// output as strictly valid JSON. The malformed text is appended under
// [ENTRADA] by the repair loop.
const RepairPromptInstruction = "Reescreva estritamente em JSON válido no formato exigido, sem explicações."

// defaultPromptDir is the subdirectory within the user's config directory.
const defaultPromptDir = ".config/mailtriage/prompts"

// LoadPromptContent resolves the path for a prompt template override and
// reads its content. An absolute configuredPath is used directly; a relative
// one is treated as a filename within ~/.config/mailtriage/prompts/.
func LoadPromptContent(configuredPath string) (string, error) {
	finalPath := configuredPath
	if !filepath.IsAbs(configuredPath) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		finalPath = filepath.Join(homeDir, defaultPromptDir, configuredPath)
	}

	promptBytes, err := os.ReadFile(finalPath)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file '%s': %w", finalPath, err)
	}
	return string(promptBytes), nil
}

// ClassificationPrompt returns the configured classification template,
// falling back to the built-in one.
func (c *Config) ClassificationPrompt() (string, error) {
	if c.Prompts.Classification == "" {
		return ClassificationPromptTemplate, nil
	}
	return LoadPromptContent(c.Prompts.Classification)
}

// SummaryPrompt returns the configured summary template, falling back to the
// built-in one.
func (c *Config) SummaryPrompt() (string, error) {
	if c.Prompts.Summary == "" {
		return SummaryPromptTemplate, nil
	}
	return LoadPromptContent(c.Prompts.Summary)
}
