package calculator

import (
	"fmt"
	"time"

	"sparkcalc/hal"
	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/calc"

	"github.com/ternarybob/arbor"
)

// Task is the calculator screen. It owns the engine and its tick scheduler, maps keyboard and
// pointer events onto keypad buttons and redraws the framebuffer when the snapshot changes.
type Task struct {
	disp hal.Display
	in   hal.Input
	clk  hal.Time
	log  arbor.ILogger

	sched *calc.TickScheduler
	eng   *calc.Engine
	pad   *Keypad

	fb    hal.Framebuffer
	d     *fbDisplay
	fonts fonts
	scr   screen

	started bool

	pressed   int
	pressedID int

	dirty bool
	last  calc.Snapshot
}

// New returns a calculator task. Any of disp, in and clk may be nil.
func New(disp hal.Display, in hal.Input, clk hal.Time, log arbor.ILogger, opts calc.Options) *Task {
	if log == nil {
		log = logger.GetLogger()
	}
	sched := calc.NewTickScheduler()
	opts.Scheduler = sched
	return &Task{
		disp:    disp,
		in:      in,
		clk:     clk,
		log:     log,
		sched:   sched,
		eng:     calc.New(opts),
		pad:     NewKeypad(),
		pressed: -1,
	}
}

// Engine returns the engine driven by the task.
func (t *Task) Engine() *calc.Engine { return t.eng }

// Step drains pending ticks and input, then redraws if anything visible changed. It is the
// per-frame function handed to the HAL runners.
func (t *Task) Step() error {
	if !t.started {
		t.start()
	}

	if t.clk != nil {
		t.drainTicks(t.clk.Ticks())
	}
	if t.in != nil {
		if kbd := t.in.Keyboard(); kbd != nil {
			t.drainKeys(kbd.Events())
		}
		if ptr := t.in.Pointer(); ptr != nil {
			t.drainPointer(ptr.Events())
		}
	}

	snap := t.eng.Snapshot()
	if t.dirty || !sameSnapshot(snap, t.last) {
		t.render(snap)
		t.last = snap
		t.dirty = false
	}
	return nil
}

func (t *Task) start() {
	t.started = true
	t.dirty = true
	if t.disp == nil {
		return
	}
	t.fb = t.disp.Framebuffer()
	if t.fb == nil {
		return
	}
	t.d = newFBDisplay(t.fb)
	t.fonts = loadFonts()
	t.scr = t.pad.layout(int16(t.fb.Width()), int16(t.fb.Height()), metrics{
		exprH:   t.fonts.small.height,
		headerH: t.fonts.small.height + 2*panelPad,
		clearW:  t.fonts.small.width(historyClearLabel),
	})
	t.log.Debug().
		Str("size", sizeString(t.fb.Width(), t.fb.Height())).
		Msg("calculator screen ready")
}

func (t *Task) drainTicks(ch <-chan uint64) {
	if ch == nil {
		return
	}
	for {
		select {
		case seq := <-ch:
			t.sched.Advance(time.Duration(seq) * time.Millisecond)
		default:
			return
		}
	}
}

func (t *Task) drainKeys(ch <-chan hal.KeyEvent) {
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			t.handleKey(ev)
		default:
			return
		}
	}
}

func (t *Task) drainPointer(ch <-chan hal.PointerEvent) {
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			t.handlePointer(ev)
		default:
			return
		}
	}
}

var keyAliases = map[rune]string{
	'r': string(calc.OpSqrt),
	'q': string(calc.OpSquare),
	's': string(calc.OpSin),
	'c': string(calc.OpCos),
	'p': string(calc.OpPi),
	'h': historyClearLabel,
}

func (t *Task) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if b, ok := t.buttonForKey(ev); ok {
		t.press(b)
	}
}

func (t *Task) buttonForKey(ev hal.KeyEvent) (Button, bool) {
	switch ev.Code {
	case hal.KeyEnter:
		return t.pad.Lookup("=")
	case hal.KeyEscape:
		return t.pad.Lookup("C")
	case hal.KeyBackspace, hal.KeyDelete:
		return t.pad.Lookup("CE")
	}
	switch r := ev.Rune; {
	case r == 0:
		return Button{}, false
	case r == '(' || r == ')':
		return Button{Label: string(r), Action: ActionAppend, Token: string(r)}, true
	case r == 'x' || r == 'X':
		return t.pad.Lookup("*")
	}
	if label, ok := keyAliases[ev.Rune]; ok {
		return t.pad.Lookup(label)
	}
	if ev.Rune > 0x7E {
		return Button{}, false
	}
	return t.pad.Lookup(string(ev.Rune))
}

func (t *Task) handlePointer(ev hal.PointerEvent) {
	i := t.pad.hit(ev.X, ev.Y)
	if ev.Press {
		if t.pressed != i {
			t.dirty = true
		}
		t.pressed = i
		t.pressedID = ev.ID
		return
	}
	if t.pressed < 0 || ev.ID != t.pressedID {
		return
	}
	pressed := t.pressed
	t.pressed = -1
	t.dirty = true
	if i == pressed {
		t.press(t.pad.buttons[i])
	}
}

func (t *Task) press(b Button) {
	expr := t.eng.Expression()
	if err := b.Apply(t.eng); err != nil {
		if b.Action == ActionUnary {
			t.log.Warn().Str("op", string(b.Op)).Err(err).Msg("calculator operation failed")
		} else {
			t.log.Warn().Str("expr", expr).Err(err).Msg("calculator evaluation failed")
		}
		return
	}
	if b.Action == ActionClearHistory {
		t.log.Debug().Msg("calculator history cleared")
	}
}

func sameSnapshot(a, b calc.Snapshot) bool {
	if a.Expression != b.Expression || a.Result != b.Result || len(a.History) != len(b.History) {
		return false
	}
	for i := range a.History {
		if a.History[i] != b.History[i] {
			return false
		}
	}
	return true
}

func sizeString(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
