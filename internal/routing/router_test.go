package routing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/models"
)

func TestRoute_AllCategories(t *testing.T) {
	cases := []struct {
		category models.Category
		expected models.Action
	}{
		{models.CategoryReclamacao, models.Action{Acao: "abrir_notificacao_slack", Destino: "#reclamacoes-urgentes"}},
		{models.CategorySugestao, models.Action{Acao: "encaminhar_time_produto", Fila: "ideias"}},
		{models.CategoryDuvida, models.Action{Acao: "responder_cliente", Template: "faq_basico"}},
		{models.CategoryElogio, models.Action{Acao: "marcar_como_elogio", Etiqueta: "elogios"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			assert.Equal(t, tc.expected, Route(tc.category))
		})
	}
}

func TestRoute_ActionJSONShapes(t *testing.T) {
	// Each action must serialize to exactly its documented shape, with no
	// stray empty fields.
	cases := []struct {
		category models.Category
		expected string
	}{
		{models.CategoryReclamacao, `{"acao":"abrir_notificacao_slack","destino":"#reclamacoes-urgentes"}`},
		{models.CategorySugestao, `{"acao":"encaminhar_time_produto","fila":"ideias"}`},
		{models.CategoryDuvida, `{"acao":"responder_cliente","template":"faq_basico"}`},
		{models.CategoryElogio, `{"acao":"marcar_como_elogio","etiqueta":"elogios"}`},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			raw, err := json.Marshal(Route(tc.category))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(raw))
		})
	}
}
