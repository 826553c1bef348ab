package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickScheduler_RunsDueInOrder(t *testing.T) {
	var s TickScheduler
	var got []string
	s.After(30*time.Millisecond, func() { got = append(got, "c") })
	s.After(10*time.Millisecond, func() { got = append(got, "a") })
	s.After(10*time.Millisecond, func() { got = append(got, "b") })

	assert.Equal(t, 0, s.Advance(5*time.Millisecond))
	assert.Equal(t, 2, s.Advance(20*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, s.Pending())

	assert.Equal(t, 1, s.Advance(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, s.Pending())
}

func TestTickScheduler_Stop(t *testing.T) {
	s := NewTickScheduler()
	fired := false
	tm := s.After(time.Millisecond, func() { fired = true })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestTickScheduler_StopAfterRun(t *testing.T) {
	s := NewTickScheduler()
	tm := s.After(0, func() {})
	assert.Equal(t, 1, s.Advance(0))
	assert.False(t, tm.Stop())
}

func TestTickScheduler_NestedAndMonotonic(t *testing.T) {
	s := NewTickScheduler()
	s.Advance(100 * time.Millisecond)

	var order []int
	s.After(10*time.Millisecond, func() {
		order = append(order, 1)
		s.After(0, func() { order = append(order, 2) })
		s.After(time.Hour, func() { order = append(order, 3) })
	})

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, s.Now(), "clock does not move backwards")
	assert.Empty(t, order)

	assert.Equal(t, 2, s.Advance(110*time.Millisecond))
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, s.Pending())
}

func TestClockScheduler_RunsDueCallbacksOnPoll(t *testing.T) {
	now := time.Unix(0, 0)
	s := NewClockScheduler(func() time.Time { return now })

	var ran []string
	s.After(10*time.Millisecond, func() { ran = append(ran, "a") })
	pending := s.After(20*time.Millisecond, func() { ran = append(ran, "b") })

	now = now.Add(9 * time.Millisecond)
	assert.Equal(t, 0, s.Poll())

	now = now.Add(time.Millisecond)
	assert.Equal(t, 1, s.Poll())
	assert.Equal(t, []string{"a"}, ran)

	assert.True(t, pending.Stop())
	now = now.Add(time.Second)
	assert.Equal(t, 0, s.Poll())
	assert.Equal(t, []string{"a"}, ran)
}

func TestEngine_ClockSchedulerResetsWithoutCaller(t *testing.T) {
	now := time.Unix(0, 0)
	e := New(Options{Scheduler: NewClockScheduler(func() time.Time { return now })})

	e.AppendToken("1/0")
	assert.Error(t, e.Evaluate())

	now = now.Add(DefaultErrorResetDelay - time.Millisecond)
	assert.Equal(t, ResultError, e.Result())

	now = now.Add(time.Millisecond)
	assert.Equal(t, ResultZero, e.Result())
	assert.False(t, e.ResetPending())
}
