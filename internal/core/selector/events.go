package selector

import (
	"time"

	"pulsetimer/internal/core/model"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventPulse       EventType = "pulse"
	EventProgress    EventType = "progress"
	EventSweep       EventType = "sweep"
)

// Event represents a controller update for observers.
type Event struct {
	Type     EventType
	State    model.ArmedState
	Option   model.PeriodOption
	Progress float64
	Count    int
	At       time.Time
}
