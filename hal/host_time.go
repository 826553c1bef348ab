//go:build !tinygo

package hal

import "time"

const tickDur = time.Millisecond

// hostTime publishes 1 ms tick sequence numbers. The window runner advances it from the wall
// clock; the headless runner advances it by exact frame periods so runs are reproducible.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step advances by the wall-clock time elapsed since the previous step.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(1)
		return
	}
	elapsed := now.Sub(t.last)
	t.last = now
	t.advance(elapsed)
}

// advance adds d to the clock and emits the ticks it completes.
func (t *hostTime) advance(d time.Duration) {
	if d <= 0 {
		return
	}
	t.acc += d
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc %= tickDur
	t.stepN(ticks)
}

// stepN publishes only the newest sequence number; readers care about the latest tick.
func (t *hostTime) stepN(n uint64) {
	t.seq += n
	for {
		select {
		case t.ch <- t.seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
