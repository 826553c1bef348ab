package calc

import "errors"

var (
	// ErrParse reports an expression that does not parse as infix arithmetic.
	ErrParse = errors.New("parse error")
	// ErrNumeric reports a non-finite or non-real outcome, or an operand that is not a number.
	ErrNumeric = errors.New("numeric error")
)
