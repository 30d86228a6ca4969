package model

import (
	"fmt"
	"time"
)

// PeriodOption is one of the fixed pulse periods a user can arm.
type PeriodOption int

const (
	Period10s PeriodOption = iota
	Period15s
	Period30s
)

var periodDurations = [...]time.Duration{
	Period10s: 10 * time.Second,
	Period15s: 15 * time.Second,
	Period30s: 30 * time.Second,
}

// Options lists every period in display order.
func Options() []PeriodOption {
	return []PeriodOption{Period10s, Period15s, Period30s}
}

// Valid reports whether the option belongs to the fixed set.
func (option PeriodOption) Valid() bool {
	return option >= Period10s && option <= Period30s
}

// Duration returns the pulse period.
func (option PeriodOption) Duration() time.Duration {
	if !option.Valid() {
		return 0
	}
	return periodDurations[option]
}

// Seconds returns the period as whole seconds, the label shown to users.
func (option PeriodOption) Seconds() int {
	return int(option.Duration() / time.Second)
}

func (option PeriodOption) String() string {
	if !option.Valid() {
		return fmt.Sprintf("PeriodOption(%d)", int(option))
	}
	return fmt.Sprintf("%ds", option.Seconds())
}

// ParsePeriod maps a seconds value such as "15" or "15s" to its option.
func ParsePeriod(value string) (PeriodOption, bool) {
	for _, option := range Options() {
		if value == option.String() || value == fmt.Sprintf("%d", option.Seconds()) {
			return option, true
		}
	}
	return 0, false
}

// ArmedState is either idle or armed with exactly one period.
type ArmedState struct {
	option PeriodOption
	armed  bool
}

// Idle returns the unarmed state.
func Idle() ArmedState {
	return ArmedState{}
}

// Armed returns the state with option armed.
func Armed(option PeriodOption) ArmedState {
	return ArmedState{option: option, armed: true}
}

// IsArmed reports whether any period is armed.
func (state ArmedState) IsArmed() bool {
	return state.armed
}

// Option returns the armed period, if any.
func (state ArmedState) Option() (PeriodOption, bool) {
	return state.option, state.armed
}

// Is reports whether option is the armed one.
func (state ArmedState) Is(option PeriodOption) bool {
	return state.armed && state.option == option
}

func (state ArmedState) String() string {
	if !state.armed {
		return "idle"
	}
	return "armed(" + state.option.String() + ")"
}
