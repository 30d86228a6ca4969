// Package session runs the selection controller on a dispatch loop so that UI
// callbacks, timers and animation frames all execute on one goroutine.
package session

import (
	"context"
	"errors"
	"log/slog"

	"pulsetimer/internal/core/cycle"
	"pulsetimer/internal/core/model"
	"pulsetimer/internal/core/scheduler"
	"pulsetimer/internal/core/selector"
)

// Session binds one dispatch loop and one controller.
type Session struct {
	loop       *scheduler.Loop
	controller *selector.Controller
	logger     *slog.Logger
}

// New creates a session. Call Run to start dispatching.
func New(config model.RuntimeConfig, pulser cycle.Pulser, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	loop := scheduler.NewLoop(0)
	controller := selector.New(selector.Config{
		Clock:   loop,
		Pulser:  pulser,
		Runtime: config,
		Logger:  logger,
	})
	return &Session{
		loop:       loop,
		controller: controller,
		logger:     logger,
	}
}

// Run dispatches until ctx ends, then disarms and closes observers.
func (session *Session) Run(ctx context.Context) error {
	err := session.loop.Run(ctx)
	// The loop has stopped, so this goroutine is the only one touching the
	// controller now.
	session.controller.Close()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Select toggles option on the loop.
func (session *Session) Select(option model.PeriodOption) error {
	return session.loop.Post(func() {
		session.controller.Select(option)
	})
}

// SelectWait toggles option and waits for the new state.
func (session *Session) SelectWait(ctx context.Context, option model.PeriodOption) (model.ArmedState, error) {
	var state model.ArmedState
	err := session.loop.Do(ctx, func() {
		state = session.controller.Select(option)
	})
	return state, err
}

// Disarm stops any armed period.
func (session *Session) Disarm() error {
	return session.loop.Post(session.controller.Disarm)
}

// Subscribe registers an observer channel.
func (session *Session) Subscribe(buffer int) <-chan selector.Event {
	return session.controller.Subscribe(buffer)
}

// State returns the armed state.
func (session *Session) State() model.ArmedState {
	return session.controller.State()
}

// Progress returns the sweep progress for option.
func (session *Session) Progress(option model.PeriodOption) float64 {
	return session.controller.Progress(option)
}
