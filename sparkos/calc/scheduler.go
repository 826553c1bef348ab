package calc

import (
	"sort"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call stopped it, false if
	// the callback already ran or was stopped before.
	Stop() bool
}

// Scheduler runs one-shot callbacks after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// TickScheduler is a Scheduler driven by an external clock. Callbacks run inside Advance on the
// caller's goroutine, so an engine and its timers share one thread of execution.
//
// The zero value is ready to use with its clock at zero.
type TickScheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*tickTask
}

type tickTask struct {
	s    *TickScheduler
	due  time.Duration
	seq  uint64
	fn   func()
	done bool
}

func (t *tickTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.s.remove(t)
	return true
}

// NewTickScheduler returns a scheduler with its clock at zero.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Now returns the last time passed to Advance.
func (s *TickScheduler) Now() time.Duration { return s.now }

// Pending returns the number of callbacks that have not run or been stopped.
func (s *TickScheduler) Pending() int { return len(s.tasks) }

// After schedules fn to run once the clock reaches Now()+d.
func (s *TickScheduler) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &tickTask{s: s, due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock to now and runs every callback that is due, oldest deadline first.
// Callbacks scheduled by a running callback also run if they are due. The clock never moves
// backwards. Advance returns the number of callbacks run.
func (s *TickScheduler) Advance(now time.Duration) int {
	if now > s.now {
		s.now = now
	}
	ran := 0
	for {
		t := s.nextDue()
		if t == nil {
			return ran
		}
		t.done = true
		s.remove(t)
		if t.fn != nil {
			t.fn()
		}
		ran++
	}
}

func (s *TickScheduler) nextDue() *tickTask {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	if s.tasks[0].due > s.now {
		return nil
	}
	return s.tasks[0]
}

func (s *TickScheduler) remove(t *tickTask) {
	for i, x := range s.tasks {
		if x == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Poller is implemented by schedulers that read their own clock. An Engine polls its
// scheduler before every call, so due callbacks run on the engine's goroutine.
type Poller interface {
	Poll() int
}

// ClockScheduler is a Scheduler on a wall clock. It starts no goroutines: callbacks that are
// due run inside Poll or After.
type ClockScheduler struct {
	ticks TickScheduler
	start time.Time
	now   func() time.Time
}

// NewClockScheduler returns a scheduler whose clock starts now. A nil now selects time.Now.
func NewClockScheduler(now func() time.Time) *ClockScheduler {
	if now == nil {
		now = time.Now
	}
	return &ClockScheduler{start: now(), now: now}
}

// After schedules fn to run once d has elapsed on the clock.
func (s *ClockScheduler) After(d time.Duration, fn func()) Timer {
	s.Poll()
	return s.ticks.After(d, fn)
}

// Poll runs every callback that is due and returns how many ran.
func (s *ClockScheduler) Poll() int {
	return s.ticks.Advance(s.now().Sub(s.start))
}
