package calc

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokPower
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		if l.peek(1) == '+' {
			l.i += 2
			return token{kind: tokInvalid, text: "++"}
		}
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		if l.peek(1) == '-' {
			l.i += 2
			return token{kind: tokInvalid, text: "--"}
		}
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		if l.peek(1) == '*' {
			l.i += 2
			return token{kind: tokPower, text: "**"}
		}
		l.i++
		return token{kind: tokStar, text: "*"}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/"}
	case '%':
		l.i++
		return token{kind: tokPercent, text: "%"}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")"}
	}

	ch := rune(l.s[l.i])
	if ch == '.' || isDigit(ch) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokInvalid, text: txt}
		}
		return token{kind: tokNumber, text: txt, num: f}
	}

	l.i++
	return token{kind: tokInvalid, text: string(ch)}
}

func (l *lexer) peek(off int) byte {
	if l.i+off >= len(l.s) {
		return 0
	}
	return l.s[l.i+off]
}

// scanNumber returns the end of the decimal literal starting at i.
func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(rune(s[i])) {
			i++
		}
	}
	return i
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
