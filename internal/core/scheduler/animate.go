package scheduler

import "time"

// Tween drives a value linearly from 0 to 1 over a fixed duration.
type Tween struct {
	clock    Clock
	duration time.Duration
	frame    time.Duration
	start    time.Time
	step     func(float64)
	done     func()
	timer    Timer
	canceled bool
	finished bool
}

// Animate calls step(0) immediately, then step with the elapsed fraction every
// frame, and finally step(1) followed by done exactly duration after the start.
// A canceled tween calls neither step nor done again.
func Animate(clock Clock, duration, frame time.Duration, step func(float64), done func()) *Tween {
	if frame <= 0 || frame > duration {
		frame = duration
	}
	tween := &Tween{
		clock:    clock,
		duration: duration,
		frame:    frame,
		start:    clock.Now(),
		step:     step,
		done:     done,
	}
	tween.emit(0)
	if duration <= 0 {
		tween.complete()
		return tween
	}
	tween.schedule(0)
	return tween
}

// Cancel halts the tween without calling done. Idempotent.
func (tween *Tween) Cancel() {
	if tween.canceled {
		return
	}
	tween.canceled = true
	if tween.timer != nil {
		tween.timer.Stop()
		tween.timer = nil
	}
}

// Finished reports whether the tween reached 1.
func (tween *Tween) Finished() bool {
	return tween.finished
}

func (tween *Tween) schedule(elapsed time.Duration) {
	delay := tween.frame
	if remaining := tween.duration - elapsed; remaining < delay {
		delay = remaining
	}
	tween.timer = tween.clock.AfterFunc(delay, tween.tick)
}

func (tween *Tween) tick() {
	if tween.canceled {
		return
	}
	elapsed := tween.clock.Now().Sub(tween.start)
	if elapsed >= tween.duration {
		tween.emit(1)
		tween.complete()
		return
	}
	tween.emit(float64(elapsed) / float64(tween.duration))
	if tween.canceled {
		return
	}
	tween.schedule(elapsed)
}

func (tween *Tween) complete() {
	if tween.canceled {
		return
	}
	tween.finished = true
	tween.timer = nil
	if tween.done != nil {
		tween.done()
	}
}

func (tween *Tween) emit(value float64) {
	if tween.step != nil {
		tween.step(value)
	}
}
