package calc

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// ResultZero is the initial and reset result.
	ResultZero = "0"
	// ResultError is the result shown after a failed evaluation.
	ResultError = "Error"

	// DefaultErrorResetDelay is how long ResultError stays before reverting to ResultZero.
	DefaultErrorResetDelay = 1500 * time.Millisecond
)

// Options configures an Engine.
type Options struct {
	// HistoryLimit caps the history; 0 selects DefaultHistoryLimit.
	HistoryLimit int
	// ErrorResetDelay is the delay of the error reset; 0 selects DefaultErrorResetDelay.
	ErrorResetDelay time.Duration
	// KeepResetOnInput leaves a pending error reset running across later calls, so it fires even
	// after new input and forces the result back to "0". By default the next mutating call stops
	// the reset and clears the error immediately.
	KeepResetOnInput bool
	// Scheduler runs the error reset; nil selects a ClockScheduler on the wall clock. A
	// TickScheduler must be advanced by the caller.
	Scheduler Scheduler
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		HistoryLimit:    DefaultHistoryLimit,
		ErrorResetDelay: DefaultErrorResetDelay,
	}
}

// Snapshot is the read-only state a view renders.
type Snapshot struct {
	Expression string
	Result     string
	History    []string
}

// Engine is the calculator state machine. It is not safe for concurrent use; callers drive it
// and its Scheduler from one goroutine.
type Engine struct {
	opts    Options
	sched   Scheduler
	expr    string
	result  string
	history *History
	reset   Timer
	poller  Poller
}

// New returns an engine with an empty expression and result "0".
func New(opts Options) *Engine {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	if opts.ErrorResetDelay <= 0 {
		opts.ErrorResetDelay = DefaultErrorResetDelay
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewClockScheduler(nil)
	}
	e := &Engine{
		opts:    opts,
		sched:   sched,
		result:  ResultZero,
		history: NewHistory(opts.HistoryLimit),
	}
	if p, ok := sched.(Poller); ok {
		e.poller = p
	}
	return e
}

func (e *Engine) Expression() string {
	e.poll()
	return e.expr
}

func (e *Engine) Result() string {
	e.poll()
	return e.result
}

func (e *Engine) History() []Entry {
	e.poll()
	return e.history.Entries()
}

// ResetPending reports whether an error reset is scheduled and still owned by the engine.
func (e *Engine) ResetPending() bool {
	e.poll()
	return e.reset != nil
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	e.poll()
	return Snapshot{
		Expression: e.expr,
		Result:     e.result,
		History:    e.history.Strings(),
	}
}

// AppendToken appends tok to the expression. After a result is shown and nothing has been
// typed, a numeric tok starts a fresh expression instead.
func (e *Engine) AppendToken(tok string) {
	e.poll()
	e.supersede()
	if e.result != ResultZero && e.expr == "" && isFiniteNumber(tok) {
		e.expr = tok
		return
	}
	e.expr += tok
}

// Evaluate computes the sanitized expression. An expression that sanitizes to nothing is a
// no-op. On failure the result shows "Error", the expression is kept, and the error is returned.
func (e *Engine) Evaluate() error {
	e.poll()
	src := Sanitize(e.expr)
	if src == "" {
		return nil
	}
	e.supersede()

	v, err := Eval(src)
	if err != nil {
		return e.fail(fmt.Errorf("evaluate %q: %w", e.expr, err))
	}
	e.commit(e.expr, v)
	return nil
}

// ApplyUnary applies op to the expression, or to the result when the expression is empty.
// Unknown ops are ignored.
func (e *Engine) ApplyUnary(op UnaryOp) error {
	e.poll()
	fn, ok := unaryOps[op]
	if !ok {
		return nil
	}
	e.supersede()

	var x float64
	if !fn.constant {
		src := e.expr
		if src == "" {
			src = e.result
		}
		v, err := ParseOperand(src)
		if err != nil {
			return e.fail(fmt.Errorf("%s: %w", op, err))
		}
		x = v
	}

	v := fn.apply(x)
	label := fn.display(FormatNumber(x))
	if !isFinite(v) {
		return e.fail(fmt.Errorf("%s: %w: %s is not finite", label, ErrNumeric, FormatNumber(v)))
	}
	e.commit(label, v)
	return nil
}

// ClearAll empties the expression and resets the result.
func (e *Engine) ClearAll() {
	e.poll()
	e.supersede()
	e.expr = ""
	e.result = ResultZero
}

// ClearEntry drops the last character of the expression, or resets the result when the
// expression is already empty.
func (e *Engine) ClearEntry() {
	e.poll()
	e.supersede()
	if e.expr == "" {
		e.result = ResultZero
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.expr)
	e.expr = e.expr[:len(e.expr)-size]
}

// ClearHistory drops every history entry.
func (e *Engine) ClearHistory() {
	e.poll()
	e.supersede()
	e.history.Clear()
}

func (e *Engine) commit(label string, v float64) {
	value := FormatNumber(v)
	e.result = value
	e.history.Push(Entry{Expr: label, Value: value})
	e.expr = ""
}

func (e *Engine) fail(err error) error {
	e.result = ResultError
	t := e.sched.After(e.opts.ErrorResetDelay, e.resetResult)
	if !e.opts.KeepResetOnInput {
		e.reset = t
	}
	return err
}

func (e *Engine) resetResult() {
	e.reset = nil
	e.result = ResultZero
}

// poll runs a due error reset when the scheduler keeps its own clock.
func (e *Engine) poll() {
	if e.poller != nil {
		e.poller.Poll()
	}
}

// supersede stops a pending error reset and applies it early.
func (e *Engine) supersede() {
	if e.reset == nil {
		return
	}
	e.reset.Stop()
	e.reset = nil
	e.result = ResultZero
}
