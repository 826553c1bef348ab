package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"

	"github.com/ternarybob/arbor"
)

func TestHeadlessScriptDrivesCalculator(t *testing.T) {
	log := arbor.NewLogger()
	cfg := hal.HeadlessConfig{
		Host:   hal.HostConfig{Log: log},
		Hz:     100,
		Ticks:  10,
		Script: "6*7\n",
	}
	var steps int
	err := hal.RunHeadless(context.Background(), cfg, func(h hal.HAL) func() error {
		step := New(h, Config{Engine: calc.DefaultOptions(), Log: log})
		return func() error {
			steps++
			return step()
		}
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 10 {
		t.Fatalf("steps=%d, want 10", steps)
	}
}

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type panicHAL struct {
	hal.HAL
	log *lineLog
}

func (h panicHAL) Logger() hal.Logger { return h.log }

func TestGuardRecoversPanic(t *testing.T) {
	h := panicHAL{HAL: hal.New(hal.HostConfig{Width: 64, Height: 32, Log: arbor.NewLogger()}), log: &lineLog{}}
	calls := 0
	step := guard(h, func() error {
		calls++
		panic("boom")
	})

	err := step()
	if !errors.Is(err, ErrPanic) || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err=%v, want ErrPanic with boom", err)
	}
	if err2 := step(); err2 != err {
		t.Fatalf("second call err=%v, want %v", err2, err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
	if len(h.log.lines) < 2 || h.log.lines[0] != "Spark Panic:" || h.log.lines[1] != "panic: boom" {
		t.Fatalf("log lines=%q", h.log.lines)
	}

	buf := h.Display().Framebuffer().Buffer()
	var dark bool
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] == 0 && buf[i+1] == 0 {
			dark = true
			break
		}
	}
	if !dark {
		t.Fatalf("expected panic text on framebuffer")
	}
}

func TestGuardPassesErrors(t *testing.T) {
	h := hal.New(hal.HostConfig{Log: arbor.NewLogger()})
	want := errors.New("stop")
	step := guard(h, func() error { return want })
	if err := step(); !errors.Is(err, want) {
		t.Fatalf("err=%v, want %v", err, want)
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("takeRunes=%q,%q", p, r)
	}
	p, r = takeRunes("ab", 5)
	if p != "ab" || r != "" {
		t.Fatalf("takeRunes=%q,%q", p, r)
	}
}
