package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseOperand reads the longest decimal number at the start of s, ignoring leading space and
// any trailing text ("12+3" reads as 12). Inputs without a leading number fail with ErrNumeric.
func ParseOperand(s string) (float64, error) {
	t := strings.TrimLeftFunc(s, unicode.IsSpace)
	end := scanOperand(t)
	if end == 0 {
		return 0, fmt.Errorf("%w: operand %q is not a number", ErrNumeric, s)
	}
	v, err := strconv.ParseFloat(t[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: operand %q: %v", ErrNumeric, s, err)
	}
	return v, nil
}

// scanOperand returns the length of the decimal prefix of s, or 0 if there is none.
func scanOperand(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(rune(s[j])) {
			j++
		}
		if digits > 0 || j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// isFiniteNumber reports whether tok as a whole is a finite decimal number.
func isFiniteNumber(tok string) bool {
	t := strings.TrimSpace(tok)
	if t == "" || scanOperand(t) != len(t) {
		return false
	}
	v, err := strconv.ParseFloat(t, 64)
	return err == nil && isFinite(v)
}
