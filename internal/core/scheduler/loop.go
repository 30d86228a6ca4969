package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrLoopStopped indicates the loop no longer accepts work.
var ErrLoopStopped = errors.New("dispatch loop stopped")

const defaultQueueSize = 64

// Loop serializes callbacks onto one goroutine. Timer goroutines never run user
// code; they only enqueue it, so all state owned by loop callbacks is
// single-threaded.
type Loop struct {
	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewLoop creates a loop with the given queue capacity.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Run dispatches queued callbacks until ctx is canceled. A loop runs once.
func (loop *Loop) Run(ctx context.Context) error {
	if !loop.running.CompareAndSwap(false, true) {
		return errors.New("dispatch loop already running")
	}
	defer loop.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-loop.queue:
			fn()
		}
	}
}

// Post enqueues fn. It blocks while the queue is full.
func (loop *Loop) Post(fn func()) error {
	select {
	case <-loop.done:
		return ErrLoopStopped
	default:
	}
	select {
	case loop.queue <- fn:
		return nil
	case <-loop.done:
		return ErrLoopStopped
	}
}

// Do runs fn on the loop and waits for it to return.
func (loop *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := loop.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-loop.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the loop has stopped.
func (loop *Loop) Done() <-chan struct{} {
	return loop.done
}

// Now returns the wall clock time.
func (loop *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f to run on the loop after d.
func (loop *Loop) AfterFunc(d time.Duration, f func()) Timer {
	timer := &loopTimer{}
	timer.timer = time.AfterFunc(d, func() {
		_ = loop.Post(func() {
			if !timer.state.CompareAndSwap(timerPending, timerFired) {
				return
			}
			f()
		})
	})
	return timer
}

func (loop *Loop) stop() {
	loop.stopOnce.Do(func() {
		close(loop.done)
	})
}

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

type loopTimer struct {
	timer *time.Timer
	state atomic.Int32
}

// Stop also discards a callback that has already been queued but not run.
func (timer *loopTimer) Stop() bool {
	if !timer.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	timer.timer.Stop()
	return true
}
