// Package cycle runs the pulse/animation pair for one armed period: a
// fixed-interval pulse trigger and an endless linear 0→1 sweep of the same
// length.
package cycle

import (
	"log/slog"
	"time"

	"pulsetimer/internal/core/model"
	"pulsetimer/internal/core/scheduler"
)

// State is the sweep loop state.
type State int

const (
	StateRunning State = iota
	StateCompleted
	StateCanceled
)

func (state State) String() string {
	switch state {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Pulser fires the external pulse effect. It must not block.
type Pulser interface {
	Pulse()
}

// Hooks observe a running cycle. All hooks run on the clock's dispatch
// goroutine and may cancel the cycle.
type Hooks struct {
	OnPulse    func(option model.PeriodOption, count int)
	OnProgress func(option model.PeriodOption, progress float64)
	OnSweep    func(option model.PeriodOption, count int)
}

// Config contains everything a cycle needs besides its period.
type Config struct {
	Clock         scheduler.Clock
	Board         *Board
	Pulser        Pulser
	FrameInterval time.Duration
	Hooks         Hooks
	Logger        *slog.Logger
}

// Cycle is the running pulse trigger and sweep for one period.
type Cycle struct {
	option   model.PeriodOption
	period   time.Duration
	config   Config
	progress *progressCell
	state    State
	trigger  *scheduler.Repeater
	sweep    *scheduler.Tween
	pulses   int
	sweeps   int
}

// Start resets the option's progress and starts the trigger and the first
// sweep at the same instant.
func Start(option model.PeriodOption, config Config) *Cycle {
	if config.Board == nil {
		config.Board = NewBoard()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.FrameInterval <= 0 {
		config.FrameInterval = model.DefaultFrameInterval
	}

	cycle := &Cycle{
		option:   option,
		period:   option.Duration(),
		config:   config,
		progress: config.Board.cell(option),
		state:    StateRunning,
	}
	cycle.progress.store(0)
	cycle.trigger = scheduler.Every(config.Clock, cycle.period, cycle.pulse)
	cycle.startSweep()
	config.Logger.Debug("cycle started", "period", option)
	return cycle
}

// Cancel stops pulses and the sweep and resets progress to 0. Idempotent.
func (cycle *Cycle) Cancel() {
	if cycle.state == StateCanceled {
		return
	}
	cycle.state = StateCanceled
	cycle.trigger.Cancel()
	if cycle.sweep != nil {
		cycle.sweep.Cancel()
	}
	cycle.progress.store(0)
	cycle.config.Logger.Debug("cycle canceled", "period", cycle.option, "pulses", cycle.pulses, "sweeps", cycle.sweeps)
}

// Option returns the cycle's period option.
func (cycle *Cycle) Option() model.PeriodOption {
	return cycle.option
}

// State returns the sweep loop state.
func (cycle *Cycle) State() State {
	return cycle.state
}

// Pulses returns how many pulses have fired.
func (cycle *Cycle) Pulses() int {
	return cycle.pulses
}

// Sweeps returns how many sweeps have completed.
func (cycle *Cycle) Sweeps() int {
	return cycle.sweeps
}

// Progress returns the current sweep progress.
func (cycle *Cycle) Progress() float64 {
	return cycle.progress.load()
}

func (cycle *Cycle) pulse() {
	if cycle.state == StateCanceled {
		return
	}
	cycle.pulses++
	if cycle.config.Pulser != nil {
		cycle.config.Pulser.Pulse()
	}
	if hook := cycle.config.Hooks.OnPulse; hook != nil {
		hook(cycle.option, cycle.pulses)
	}
}

func (cycle *Cycle) startSweep() {
	cycle.state = StateRunning
	sweep := scheduler.Animate(cycle.config.Clock, cycle.period, cycle.config.FrameInterval, cycle.step, cycle.completeSweep)
	if cycle.state == StateCanceled {
		sweep.Cancel()
		return
	}
	cycle.sweep = sweep
}

func (cycle *Cycle) step(value float64) {
	if cycle.state == StateCanceled {
		return
	}
	cycle.progress.store(value)
	if hook := cycle.config.Hooks.OnProgress; hook != nil {
		hook(cycle.option, value)
	}
}

func (cycle *Cycle) completeSweep() {
	if cycle.state == StateCanceled {
		return
	}
	cycle.state = StateCompleted
	cycle.sweeps++
	if hook := cycle.config.Hooks.OnSweep; hook != nil {
		hook(cycle.option, cycle.sweeps)
	}
	// A hook may have canceled the cycle at the restart boundary.
	if cycle.state == StateCanceled {
		return
	}
	cycle.startSweep()
}
