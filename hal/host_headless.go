//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	Hz   int
	// Ticks stops the runner after N frames (0 = run until ctx is done).
	Ticks uint64
	// Script is typed into the keyboard, one event per frame. '\n' is Enter, '\b' is Backspace
	// and '\x1b' is Escape; other runes arrive as text input.
	Script string
	// Realtime paces frames with a wall-clock ticker; otherwise frames run back to back.
	Realtime bool
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Host)
	step := newApp(h)
	script := scriptEvents(cfg.Script)

	var pace <-chan time.Time
	if cfg.Realtime {
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var tick uint64
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if len(script) > 0 && sendKey(h.kbd.ch, script[0]) {
			script = script[1:]
		}
		h.t.advance(d)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}

func scriptEvents(s string) []KeyEvent {
	var out []KeyEvent
	for _, r := range s {
		switch r {
		case '\n', '\r':
			out = append(out, KeyEvent{Code: KeyEnter, Press: true})
		case '\b':
			out = append(out, KeyEvent{Code: KeyBackspace, Press: true})
		case 0x1b:
			out = append(out, KeyEvent{Code: KeyEscape, Press: true})
		default:
			out = append(out, KeyEvent{Press: true, Rune: r})
		}
	}
	return out
}
