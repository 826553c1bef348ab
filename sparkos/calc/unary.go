package calc

import (
	"math"
	"strings"
)

// UnaryOp names a single-operand operation. The values are the button labels.
type UnaryOp string

const (
	OpSqrt   UnaryOp = "√"
	OpSquare UnaryOp = "x²"
	OpSin    UnaryOp = "sin"
	OpCos    UnaryOp = "cos"
	OpPi     UnaryOp = "π"
)

type unaryFunc struct {
	apply   func(x float64) float64
	display func(operand string) string
	// constant ops ignore the operand and never parse it.
	constant bool
}

var unaryOps = map[UnaryOp]unaryFunc{
	OpSqrt: {
		apply:   math.Sqrt,
		display: func(s string) string { return "√(" + s + ")" },
	},
	OpSquare: {
		apply:   func(x float64) float64 { return math.Pow(x, 2) },
		display: func(s string) string { return "(" + s + ")²" },
	},
	OpSin: {
		apply:   func(x float64) float64 { return math.Sin(x * math.Pi / 180) },
		display: func(s string) string { return "sin(" + s + ")" },
	},
	OpCos: {
		apply:   func(x float64) float64 { return math.Cos(x * math.Pi / 180) },
		display: func(s string) string { return "cos(" + s + ")" },
	},
	OpPi: {
		apply:    func(float64) float64 { return math.Pi },
		display:  func(string) string { return "π" },
		constant: true,
	},
}

// UnaryOps lists the supported operations in keypad order.
func UnaryOps() []UnaryOp {
	return []UnaryOp{OpSqrt, OpSquare, OpSin, OpCos, OpPi}
}

// Valid reports whether op is a supported operation.
func (op UnaryOp) Valid() bool {
	_, ok := unaryOps[op]
	return ok
}

// ParseUnaryOp maps a label or an ASCII alias (sqrt, sq, square, x^2, sin, cos, pi) to an op.
func ParseUnaryOp(name string) (UnaryOp, bool) {
	if op := UnaryOp(name); op.Valid() {
		return op, true
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqrt", "root":
		return OpSqrt, true
	case "sq", "square", "x^2", "x2":
		return OpSquare, true
	case "sin":
		return OpSin, true
	case "cos":
		return OpCos, true
	case "pi":
		return OpPi, true
	}
	return "", false
}
