package scheduler

import "time"

// Repeater invokes a callback once per period until canceled.
type Repeater struct {
	clock    Clock
	period   time.Duration
	fn       func()
	next     time.Time
	timer    Timer
	canceled bool
	fired    int
}

// Every calls fn each period, first one period from now. Deadlines advance by
// exactly period from the previous deadline, not from when fn ran, so the
// cadence matches a fixed interval.
func Every(clock Clock, period time.Duration, fn func()) *Repeater {
	repeater := &Repeater{
		clock:  clock,
		period: period,
		fn:     fn,
		next:   clock.Now().Add(period),
	}
	repeater.arm()
	return repeater
}

// Cancel stops future invocations. It is safe to call more than once and from
// inside fn.
func (repeater *Repeater) Cancel() {
	if repeater.canceled {
		return
	}
	repeater.canceled = true
	if repeater.timer != nil {
		repeater.timer.Stop()
		repeater.timer = nil
	}
}

// Fired returns how many times fn has run.
func (repeater *Repeater) Fired() int {
	return repeater.fired
}

func (repeater *Repeater) arm() {
	delay := repeater.next.Sub(repeater.clock.Now())
	if delay < 0 {
		delay = 0
	}
	repeater.timer = repeater.clock.AfterFunc(delay, repeater.fire)
}

func (repeater *Repeater) fire() {
	if repeater.canceled {
		return
	}
	repeater.fired++
	repeater.next = repeater.next.Add(repeater.period)
	repeater.fn()
	if repeater.canceled {
		return
	}
	repeater.arm()
}
