package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		label    string
		expected Category
		ok       bool
	}{
		{"Reclamação", CategoryReclamacao, true},
		{"reclamacao", CategoryReclamacao, true},
		{"RECLAMAÇÃO", CategoryReclamacao, true},
		{"Sugestão", CategorySugestao, true},
		{"sugestao", CategorySugestao, true},
		{"Dúvida", CategoryDuvida, true},
		{"duvida", CategoryDuvida, true},
		{"  Dúvida  ", CategoryDuvida, true},
		{"Elogio", CategoryElogio, true},
		{"ELOGIO", CategoryElogio, true},
		{"", "", false},
		{"Spam", "", false},
		{"Reclamação grave", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			got, ok := ParseCategory(tc.label)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryReclamacao.IsValid())
	assert.True(t, CategoryDuvida.IsValid())
	assert.False(t, Category("Spam").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestCategoryFallbackIsDuvida(t *testing.T) {
	assert.Equal(t, CategoryDuvida, CategoryFallback)
}
