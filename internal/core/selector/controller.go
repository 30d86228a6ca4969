// Package selector owns which pulse period is armed. It applies user toggles as
// a pure state transition followed by teardown-then-setup of the pulse cycle,
// so two periods never run at once.
package selector

import (
	"log/slog"
	"sync"

	"pulsetimer/internal/core/cycle"
	"pulsetimer/internal/core/model"
	"pulsetimer/internal/core/scheduler"
)

// Config contains controller dependencies.
type Config struct {
	Clock   scheduler.Clock
	Board   *cycle.Board
	Pulser  cycle.Pulser
	Runtime model.RuntimeConfig
	Logger  *slog.Logger
}

// Controller serializes period selection. Select, Disarm and Close must run on
// the clock's dispatch goroutine; State, IsArmed, Progress and Subscribe are
// safe from any goroutine.
type Controller struct {
	config Config

	mu     sync.Mutex
	state  model.ArmedState
	events []chan Event
	closed bool

	active *cycle.Cycle
}

// New creates an idle controller.
func New(config Config) *Controller {
	if config.Board == nil {
		config.Board = cycle.NewBoard()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	config.Runtime = config.Runtime.Normalize()
	return &Controller{
		config: config,
		state:  model.Idle(),
	}
}

// Select toggles option and returns the new state.
func (controller *Controller) Select(option model.PeriodOption) model.ArmedState {
	if !option.Valid() {
		controller.config.Logger.Warn("ignoring unknown period", "period", option)
		return controller.State()
	}
	next := Transition(controller.State(), option)
	controller.apply(next)
	return next
}

// Disarm stops any running cycle.
func (controller *Controller) Disarm() {
	controller.apply(model.Idle())
}

// State returns the armed state.
func (controller *Controller) State() model.ArmedState {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// IsArmed reports whether option is the armed period.
func (controller *Controller) IsArmed(option model.PeriodOption) bool {
	return controller.State().Is(option)
}

// Progress returns the sweep progress for option.
func (controller *Controller) Progress(option model.PeriodOption) float64 {
	return controller.config.Board.Progress(option)
}

// Subscribe registers a new observer channel. Slow observers miss pulse and
// progress events rather than stall the controller, but a state change always
// lands: it evicts the oldest buffered event when the channel is full.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		close(ch)
	} else {
		controller.events = append(controller.events, ch)
	}
	controller.mu.Unlock()
	return ch
}

// Close disarms and closes observer channels.
func (controller *Controller) Close() {
	controller.Disarm()

	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) apply(next model.ArmedState) {
	controller.mu.Lock()
	prev := controller.state
	controller.mu.Unlock()

	plan := PlanEffects(prev, next)
	if !plan.Teardown && !plan.Setup {
		return
	}

	if plan.Teardown && controller.active != nil {
		controller.active.Cancel()
		controller.active = nil
	}

	controller.mu.Lock()
	controller.state = next
	controller.mu.Unlock()

	controller.config.Logger.Info("armed state changed", "from", prev, "to", next)
	controller.emit(Event{
		Type:  EventStateChange,
		State: next,
		At:    controller.config.Clock.Now(),
	})
	if prevOption, ok := prev.Option(); ok {
		controller.emit(Event{
			Type:   EventProgress,
			State:  next,
			Option: prevOption,
			At:     controller.config.Clock.Now(),
		})
	}

	if plan.Setup {
		controller.active = cycle.Start(plan.Option, cycle.Config{
			Clock:         controller.config.Clock,
			Board:         controller.config.Board,
			Pulser:        controller.config.Pulser,
			FrameInterval: controller.config.Runtime.FrameInterval,
			Logger:        controller.config.Logger,
			Hooks: cycle.Hooks{
				OnPulse:    controller.handlePulse,
				OnProgress: controller.handleProgress,
				OnSweep:    controller.handleSweep,
			},
		})
	}
}

func (controller *Controller) handlePulse(option model.PeriodOption, count int) {
	controller.config.Logger.Debug("pulse", "period", option, "count", count)
	controller.emit(Event{
		Type:   EventPulse,
		State:  model.Armed(option),
		Option: option,
		Count:  count,
		At:     controller.config.Clock.Now(),
	})
}

func (controller *Controller) handleProgress(option model.PeriodOption, progress float64) {
	controller.emit(Event{
		Type:     EventProgress,
		State:    model.Armed(option),
		Option:   option,
		Progress: progress,
		At:       controller.config.Clock.Now(),
	})
}

func (controller *Controller) handleSweep(option model.PeriodOption, count int) {
	controller.emit(Event{
		Type:   EventSweep,
		State:  model.Armed(option),
		Option: option,
		Count:  count,
		At:     controller.config.Clock.Now(),
	})
}

func (controller *Controller) emit(event Event) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	for _, ch := range controller.events {
		select {
		case ch <- event:
			continue
		default:
		}
		if event.Type != EventStateChange {
			continue
		}
		// Evict the oldest buffered event so the latest state always lands.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}
