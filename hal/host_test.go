//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ternarybob/arbor"
)

func TestHostTimeAdvance(t *testing.T) {
	ht := newHostTime()

	ht.advance(500 * time.Microsecond)
	select {
	case seq := <-ht.Ticks():
		t.Fatalf("unexpected tick %d before 1ms", seq)
	default:
	}

	ht.advance(2600 * time.Microsecond)
	if got := <-ht.Ticks(); got != 3 {
		t.Fatalf("seq=%d, want 3", got)
	}

	ht.advance(time.Millisecond)
	ht.advance(time.Millisecond)
	if got := <-ht.Ticks(); got != 5 {
		t.Fatalf("seq=%d, want newest 5", got)
	}
}

func TestHostTimeKeepsNewestWhenFull(t *testing.T) {
	ht := &hostTime{ch: make(chan uint64, 2)}
	for i := 0; i < 5; i++ {
		ht.stepN(1)
	}
	var last uint64
	for {
		select {
		case seq := <-ht.Ticks():
			last = seq
			continue
		default:
		}
		break
	}
	if last != 5 {
		t.Fatalf("last=%d, want 5", last)
	}
}

func TestScriptEvents(t *testing.T) {
	evs := scriptEvents("7+\b3\n\x1b")
	want := []KeyEvent{
		{Press: true, Rune: '7'},
		{Press: true, Rune: '+'},
		{Code: KeyBackspace, Press: true},
		{Press: true, Rune: '3'},
		{Code: KeyEnter, Press: true},
		{Code: KeyEscape, Press: true},
	}
	if len(evs) != len(want) {
		t.Fatalf("len=%d, want %d", len(evs), len(want))
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Fatalf("evs[%d]=%+v, want %+v", i, evs[i], want[i])
		}
	}
}

func TestRunHeadlessDeliversScriptAndTicks(t *testing.T) {
	var (
		runes  []rune
		steps  int
		latest uint64
	)
	cfg := HeadlessConfig{
		Host:   HostConfig{Width: 8, Height: 8, Log: arbor.NewLogger()},
		Hz:     100,
		Ticks:  5,
		Script: "12",
	}
	err := RunHeadless(context.Background(), cfg, func(h HAL) func() error {
		if w := h.Display().Framebuffer().Width(); w != 8 {
			t.Fatalf("width=%d, want 8", w)
		}
		kbd := h.Input().Keyboard().Events()
		ticks := h.Time().Ticks()
		return func() error {
			steps++
			for {
				select {
				case ev := <-kbd:
					runes = append(runes, ev.Rune)
					continue
				case seq := <-ticks:
					latest = seq
					continue
				default:
				}
				return nil
			}
		}
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps=%d, want 5", steps)
	}
	if string(runes) != "12" {
		t.Fatalf("runes=%q, want %q", string(runes), "12")
	}
	if latest != 50 {
		t.Fatalf("latest tick=%d, want 50", latest)
	}
}

func TestRunHeadlessStopsOnStepError(t *testing.T) {
	boom := errors.New("boom")
	cfg := HeadlessConfig{Host: HostConfig{Log: arbor.NewLogger()}, Hz: 1000}
	err := RunHeadless(context.Background(), cfg, func(HAL) func() error {
		return func() error { return boom }
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
}

func TestRunHeadlessHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := HeadlessConfig{Host: HostConfig{Log: arbor.NewLogger()}}
	err := RunHeadless(ctx, cfg, func(HAL) func() error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestFramebufferClearAndPresent(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	for i, b := range fb.Buffer() {
		if b != 0xFF {
			t.Fatalf("buf[%d]=%#x, want 0xff", i, b)
		}
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if fb.presented() != 1 {
		t.Fatalf("presented=%d, want 1", fb.presented())
	}
}
