package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "16", want: 16},
		{in: " 12+3", want: 12},
		{in: "-.5x", want: -0.5},
		{in: "+7", want: 7},
		{in: "1.", want: 1},
		{in: "1e3", want: 1000},
		{in: "2E-2", want: 0.02},
		{in: "1e", want: 1},
		{in: "3.25.1", want: 3.25},
	}
	for _, tt := range tests {
		v, err := ParseOperand(tt.in)
		require.NoError(t, err, "ParseOperand(%q)", tt.in)
		assert.Equal(t, tt.want, v, "ParseOperand(%q)", tt.in)
	}
}

func TestParseOperand_Errors(t *testing.T) {
	for _, in := range []string{"", " ", ".", "-", "Error", "abc", "(5)", "1e400"} {
		_, err := ParseOperand(in)
		assert.ErrorIs(t, err, ErrNumeric, "ParseOperand(%q)", in)
	}
}

func TestIsFiniteNumber(t *testing.T) {
	for _, in := range []string{"7", "0", "1.5", ".5", "-3", "1e3"} {
		assert.True(t, isFiniteNumber(in), in)
	}
	for _, in := range []string{"", "+", "-", ".", "%", "(", "7+", "1e400", "Infinity", "0x10"} {
		assert.False(t, isFiniteNumber(in), in)
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"7+3":        "7+3",
		"7+3abc":     "7+3",
		"√(16)":      "(16)",
		"2 × 3":      "23",
		"(1.5%2)/4*": "(1.5%2)/4*",
		"٣+1":        "+1",
		"":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Sanitize(in), "Sanitize(%q)", in)
	}
}
