package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with the shortest digits that round-trip. Decimal exponents in
// [-7, 21) print in plain notation, everything else as d.ddde±x.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	neg := v < 0
	if neg {
		v = -v
	}

	mant, expPart, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	k := len(digits)
	n := exp + 1

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteString(digits[:1])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 < 0 {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(1 - n))
		} else {
			b.WriteByte('+')
			b.WriteString(strconv.Itoa(n - 1))
		}
	}
	return b.String()
}
