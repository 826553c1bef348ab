package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 10, want: "10"},
		{in: -2, want: "-2"},
		{in: 4, want: "4"},
		{in: 1.5, want: "1.5"},
		{in: math.Pi, want: "3.141592653589793"},
		{in: 0.1 + 0.2, want: "0.30000000000000004"},
		{in: 123456789012, want: "123456789012"},
		{in: 1e20, want: "100000000000000000000"},
		{in: 1e21, want: "1e+21"},
		{in: 1.5e300, want: "1.5e+300"},
		{in: 0.000001, want: "0.000001"},
		{in: 1e-7, want: "1e-7"},
		{in: -1.25e-9, want: "-1.25e-9"},
		{in: 0.001234, want: "0.001234"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}
