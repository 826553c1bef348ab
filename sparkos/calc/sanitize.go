package calc

import "strings"

// Sanitize drops every character that cannot appear in an arithmetic expression, keeping
// ASCII digits, '.', '(', ')' and the operators + - * / %.
func Sanitize(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	for _, r := range expr {
		if isExprRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isExprRune(r rune) bool {
	switch r {
	case '-', '(', ')', '/', '*', '+', '.', '%':
		return true
	}
	return isDigit(r)
}
