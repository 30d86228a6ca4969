package haptics

import "sync/atomic"

// Switch forwards pulses to a pulser that can be replaced while a cycle runs,
// for example after the user changes the pulse effect.
type Switch struct {
	current atomic.Pointer[target]
}

type target struct {
	pulser Pulser
}

// NewSwitch returns a switch forwarding to pulser.
func NewSwitch(pulser Pulser) *Switch {
	sw := &Switch{}
	sw.Set(pulser)
	return sw
}

// Set replaces the pulser. Safe from any goroutine.
func (sw *Switch) Set(pulser Pulser) {
	sw.current.Store(&target{pulser: pulser})
}

// Pulse fires the current pulser.
func (sw *Switch) Pulse() {
	if current := sw.current.Load(); current != nil && current.pulser != nil {
		current.pulser.Pulse()
	}
}
