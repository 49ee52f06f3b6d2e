package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category is one of the four closed classification labels. The canonical
// spelling (with diacritics) is what appears in emitted records.
type Category string

const (
	CategoryReclamacao Category = "Reclamação"
	CategorySugestao   Category = "Sugestão"
	CategoryDuvida     Category = "Dúvida"
	CategoryElogio     Category = "Elogio"
)

// CategoryFallback is substituted whenever a label cannot be normalized into
// the closed set.
const CategoryFallback = CategoryDuvida

// foldTransformer strips combining marks after NFD decomposition, so
// "Reclamação" and "reclamacao" fold to the same key.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// byFoldedLabel maps folded labels back to canonical categories.
var byFoldedLabel = map[string]Category{
	"reclamacao": CategoryReclamacao,
	"sugestao":   CategorySugestao,
	"duvida":     CategoryDuvida,
	"elogio":     CategoryElogio,
}

func foldLabel(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.TrimSpace(s))
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the raw input
		// and let the vocabulary lookup miss.
		folded = strings.TrimSpace(s)
	}
	return strings.ToLower(folded)
}

// ParseCategory normalizes a free-form label from model output into the
// closed category set. Matching is case- and diacritic-insensitive.
func ParseCategory(label string) (Category, bool) {
	c, ok := byFoldedLabel[foldLabel(label)]
	return c, ok
}

// IsValid reports whether c is a member of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryReclamacao, CategorySugestao, CategoryDuvida, CategoryElogio:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }
