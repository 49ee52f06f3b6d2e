// Package mailbox holds the static sample inbox used by the run command.
package mailbox

import (
	"mailtriage/internal/models"
)

// Fixtures returns the sample e-mails processed by `mailtriage run`. The set
// deliberately covers every category plus the awkward cases: an empty body, a
// noisy body and a mixed praise-plus-suggestion message.
func Fixtures() []models.Email {
	return []models.Email{
		{
			ID:      "eml-001",
			From:    "cliente1@example.com",
			Subject: "Produto com problema e sem resposta",
			Body:    "O produto chegou com a tela trincada e ninguém responde meu ticket.",
		},
		{
			ID:      "eml-002",
			From:    "cliente2@example.com",
			Subject: "Filtro por cor",
			Body:    "Poderiam adicionar filtro por cor na busca?",
		},
		{
			ID:      "eml-003",
			From:    "cliente3@example.com",
			Subject: "Troca em 30 dias",
			Body:    "Como faço para trocar um item defeituoso dentro de 30 dias?",
		},
		{
			ID:      "eml-004",
			From:    "cliente4@example.com",
			Subject: "Agradecimento",
			Body:    "Atendimento excelente, entrega no prazo. Obrigado!",
		},
		{
			ID:      "eml-005",
			From:    "cliente5@example.com",
			Subject: "Pedido atrasado",
			Body:    "Meu pedido #98765 está atrasado e viajo amanhã, o que posso fazer?",
		},
		{
			ID:      "eml-006",
			From:    "cliente6@example.com",
			Subject: "Sem conteúdo",
			Body:    "",
		},
		{
			ID:      "eml-007",
			From:    "cliente7@example.com",
			Subject: "Texto ruidoso",
			Body:    "asdf 123!!! ?? ajuda, talvez, não sei, pedido 00000?",
		},
		{
			ID:      "eml-008",
			From:    "cliente8@example.com",
			Subject: "Elogio + sugestão",
			Body:    "Equipe muito boa! Talvez um modo escuro no app ajudaria à noite.",
		},
	}
}
