package calc

// This file contains the expression tree and its evaluator.

import (
	"fmt"
	"math"
)

type node interface {
	Eval() float64
}

type nodeNumber struct{ v float64 }

func (n nodeNumber) Eval() float64 { return n.v }

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) Eval() float64 {
	v := n.x.Eval()
	if n.op == '-' {
		return -v
	}
	return v
}

// opPow is the nodeBinary operator for '**'.
const opPow = '^'

type nodeBinary struct {
	op    byte
	left  node
	right node
}

func (n nodeBinary) Eval() float64 {
	a := n.left.Eval()
	b := n.right.Eval()
	switch n.op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	case '%':
		return math.Mod(a, b)
	case opPow:
		return pow(a, b)
	default:
		return math.NaN()
	}
}

// pow differs from math.Pow where the two conventions disagree: (±1)**±Inf is NaN.
func pow(a, b float64) float64 {
	if math.IsInf(b, 0) && (a == 1 || a == -1) {
		return math.NaN()
	}
	return math.Pow(a, b)
}

// Eval parses and evaluates a sanitized infix expression.
//
// Arithmetic is IEEE-754 double precision throughout and only the final value is checked, so
// 1/(1/0) evaluates to 0 while 1/0 and 0%0 fail with ErrNumeric.
//
// Numbers are always decimal: a leading zero does not select octal, so 010 is 10, not 8.
func Eval(src string) (float64, error) {
	ex, err := parse(src)
	if err != nil {
		return 0, err
	}
	v := ex.Eval()
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrNumeric, FormatNumber(v))
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
