// Package routing maps a validated category to its action descriptor. Pure
// computation: no I/O, no model calls, no delivery of the action itself.
package routing

import (
	"mailtriage/internal/models"
)

// Route returns the action descriptor for a category. Total over the closed
// category set; the classifier guarantees no other value reaches this point,
// and the default arm doubles as the Dúvida shape so the function stays total
// for any future caller.
func Route(category models.Category) models.Action {
	switch category {
	case models.CategoryReclamacao:
		return models.Action{Acao: "abrir_notificacao_slack", Destino: "#reclamacoes-urgentes"}
	case models.CategorySugestao:
		return models.Action{Acao: "encaminhar_time_produto", Fila: "ideias"}
	case models.CategoryElogio:
		return models.Action{Acao: "marcar_como_elogio", Etiqueta: "elogios"}
	default:
		return models.Action{Acao: "responder_cliente", Template: "faq_basico"}
	}
}
