package calculator

import (
	"errors"
	"fmt"

	"sparkcalc/sparkos/calc"
)

// ErrUnknownButton is returned when a label does not name a keypad button.
var ErrUnknownButton = errors.New("unknown button")

// Action is what a button does to the engine.
type Action uint8

const (
	ActionAppend Action = iota
	ActionEvaluate
	ActionClearAll
	ActionClearEntry
	ActionUnary
	ActionClearHistory
)

type buttonKind uint8

const (
	kindNumber buttonKind = iota
	kindOperator
	kindClear
	kindEquals
	kindAdvanced
	kindLink
)

// Button is one keypad button.
type Button struct {
	Label  string
	Action Action
	// Token is appended to the expression for ActionAppend.
	Token string
	// Op is applied for ActionUnary.
	Op calc.UnaryOp

	kind buttonKind
	row  int
	rect rect
}

// Apply performs the button's action on e.
func (b Button) Apply(e *calc.Engine) error {
	switch b.Action {
	case ActionAppend:
		e.AppendToken(b.Token)
	case ActionEvaluate:
		return e.Evaluate()
	case ActionClearAll:
		e.ClearAll()
	case ActionClearEntry:
		e.ClearEntry()
	case ActionUnary:
		return e.ApplyUnary(b.Op)
	case ActionClearHistory:
		e.ClearHistory()
	}
	return nil
}

// Rows of the basic grid, top to bottom.
var gridRows = [][]string{
	{"C", "CE", "%", "÷"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "="},
}

const historyClearLabel = "Clear"

// Keypad is the ordered set of buttons on the calculator screen: the unary row, the grid
// and the history Clear button.
type Keypad struct {
	buttons []Button
}

// NewKeypad returns the standard calculator keypad.
func NewKeypad() *Keypad {
	k := &Keypad{}
	for _, op := range calc.UnaryOps() {
		k.buttons = append(k.buttons, Button{
			Label:  string(op),
			Action: ActionUnary,
			Op:     op,
			kind:   kindAdvanced,
			row:    0,
		})
	}
	for i, row := range gridRows {
		for _, label := range row {
			b := Button{Label: label, row: i + 1}
			switch label {
			case "C":
				b.Action, b.kind = ActionClearAll, kindClear
			case "CE":
				b.Action, b.kind = ActionClearEntry, kindClear
			case "=":
				b.Action, b.kind = ActionEvaluate, kindEquals
			case "÷", "*", "-", "+", "%":
				b.Action, b.kind, b.Token = ActionAppend, kindOperator, TokenFor(label)
			default:
				b.Action, b.kind, b.Token = ActionAppend, kindNumber, label
			}
			k.buttons = append(k.buttons, b)
		}
	}
	k.buttons = append(k.buttons, Button{
		Label:  historyClearLabel,
		Action: ActionClearHistory,
		kind:   kindLink,
		row:    -1,
	})
	return k
}

// Buttons returns a copy of the keypad buttons in layout order.
func (k *Keypad) Buttons() []Button {
	out := make([]Button, len(k.buttons))
	copy(out, k.buttons)
	return out
}

// Lookup finds a button by label, by the token it appends ("/" finds "÷"), or by a unary
// operation alias ("sqrt" finds "√").
func (k *Keypad) Lookup(label string) (Button, bool) {
	if i := k.index(label); i >= 0 {
		return k.buttons[i], true
	}
	return Button{}, false
}

func (k *Keypad) index(label string) int {
	for i, b := range k.buttons {
		if b.Label == label {
			return i
		}
	}
	tok := TokenFor(label)
	for i, b := range k.buttons {
		if b.Action == ActionAppend && b.Token == tok {
			return i
		}
	}
	if op, ok := calc.ParseUnaryOp(label); ok {
		for i, b := range k.buttons {
			if b.Action == ActionUnary && b.Op == op {
				return i
			}
		}
	}
	return -1
}

// Press applies the button named by label to e.
func (k *Keypad) Press(e *calc.Engine, label string) error {
	b, ok := k.Lookup(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownButton, label)
	}
	return b.Apply(e)
}

// TokenFor maps a display glyph to the operator token the engine understands.
func TokenFor(label string) string {
	switch label {
	case "÷":
		return "/"
	case "×":
		return "*"
	}
	return label
}
