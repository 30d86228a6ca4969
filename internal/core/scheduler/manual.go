package scheduler

import (
	"sort"
	"time"
)

// Manual is a virtual clock. Callbacks run only inside Advance, on the caller's
// goroutine, in deadline order.
type Manual struct {
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

// NewManual creates a virtual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (clock *Manual) Now() time.Time {
	return clock.now
}

// AfterFunc schedules f at Now()+d.
func (clock *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	clock.seq++
	timer := &manualTimer{
		clock:    clock,
		deadline: clock.now.Add(d),
		seq:      clock.seq,
		fn:       f,
	}
	clock.pending = append(clock.pending, timer)
	return timer
}

// Advance moves virtual time forward by d, firing every callback that becomes
// due, including ones scheduled by callbacks during the advance.
func (clock *Manual) Advance(d time.Duration) {
	target := clock.now.Add(d)
	for {
		next := clock.nextDue(target)
		if next == nil {
			break
		}
		clock.remove(next)
		clock.now = next.deadline
		next.fn()
	}
	clock.now = target
}

// Pending returns the number of scheduled callbacks.
func (clock *Manual) Pending() int {
	return len(clock.pending)
}

func (clock *Manual) nextDue(target time.Time) *manualTimer {
	if len(clock.pending) == 0 {
		return nil
	}
	sort.SliceStable(clock.pending, func(i, j int) bool {
		left, right := clock.pending[i], clock.pending[j]
		if !left.deadline.Equal(right.deadline) {
			return left.deadline.Before(right.deadline)
		}
		return left.seq < right.seq
	})
	first := clock.pending[0]
	if first.deadline.After(target) {
		return nil
	}
	return first
}

func (clock *Manual) remove(timer *manualTimer) bool {
	for i, candidate := range clock.pending {
		if candidate == timer {
			clock.pending = append(clock.pending[:i], clock.pending[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	seq      uint64
	fn       func()
}

func (timer *manualTimer) Stop() bool {
	return timer.clock.remove(timer)
}
