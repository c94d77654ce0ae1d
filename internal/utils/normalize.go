package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeTerm remove acentos e diacríticos e converte para minúsculas.
// Exemplo: "Educação" -> "educacao", "Fintech" -> "fintech"
func NormalizeTerm(term string) string {
	if term == "" {
		return term
	}

	// Remove acentos e diacríticos
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, term)

	return strings.ToLower(normalized)
}

// ContainsFold verifica se needle é substring de haystack, ignorando caixa e
// acentuação. É o match usado pelos termos de contexto do scorer e pelo
// pré-filtro do Candidate Source.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(NormalizeTerm(haystack), NormalizeTerm(needle))
}

// AnyTagContainsFold aplica ContainsFold sobre uma lista de tags.
func AnyTagContainsFold(tags []string, needle string) bool {
	for _, tag := range tags {
		if ContainsFold(tag, needle) {
			return true
		}
	}
	return false
}
