package reconciling

import (
	"strings"
	"unicode"
)

// NormalizeText prepara um nome ou código para comparação: remove espaços e
// hífens das bordas, descarta tudo que não é letra ou dígito e rebaixa para
// minúsculas
func NormalizeText(text string) string {
	trimmed := strings.Trim(text, " -")

	var b strings.Builder
	b.Grow(len(trimmed))

	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// MatchesCode verifica se o código informado aparece como substring do nome
// da entidade, ambos normalizados. Código vazio após normalização nunca casa.
func MatchesCode(entityName, code string) bool {
	normalizedCode := NormalizeText(code)
	if normalizedCode == "" {
		return false
	}

	return strings.Contains(NormalizeText(entityName), normalizedCode)
}
