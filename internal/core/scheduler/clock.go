// Package scheduler provides the timing primitives the pulse cycle is built on:
// a Clock abstraction, a single-goroutine dispatch Loop, a virtual Manual clock
// for tests, and the cancelable Every and Animate helpers.
//
// Every callback scheduled through a Clock runs on that clock's dispatch
// goroutine (the Loop goroutine, or the goroutine calling Manual.Advance).
// Stop and Cancel must be called from the same goroutine.
package scheduler

import "time"

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped a pending callback.
	Stop() bool
}

// Clock provides time and one-shot callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Handle is a cancelable running schedule.
type Handle interface {
	Cancel()
}
