// Package haptics provides the pulse effects fired by an armed cycle. Desktop
// machines have no vibration motor, so the default effect is a short audible
// tick played through the speaker.
package haptics

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrUnknownMode indicates an unsupported pulse mode name.
var ErrUnknownMode = errors.New("unknown pulse mode")

// Mode selects the pulse effect.
type Mode string

const (
	ModeBeep Mode = "beep"
	ModeLog  Mode = "log"
	ModeOff  Mode = "off"
)

// Modes lists supported modes in menu order.
func Modes() []Mode {
	return []Mode{ModeBeep, ModeLog, ModeOff}
}

// ParseMode maps a mode name to a Mode.
func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Modes() {
		if mode == known {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

// Pulser fires a pulse. Implementations must return promptly and never report
// failure.
type Pulser interface {
	Pulse()
}

// Multi fans a pulse out to several pulsers.
type Multi []Pulser

// Pulse fires every pulser in order.
func (multi Multi) Pulse() {
	for _, pulser := range multi {
		if pulser != nil {
			pulser.Pulse()
		}
	}
}

// Nop ignores pulses.
type Nop struct{}

// Pulse does nothing.
func (Nop) Pulse() {}

// Logger records each pulse.
type Logger struct {
	logger *slog.Logger
}

// NewLogger returns a pulser that logs at info level.
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

// Pulse logs the pulse.
func (pulser *Logger) Pulse() {
	pulser.logger.Info("pulse")
}

// Options configure New.
type Options struct {
	Frequency float64
	Length    time.Duration
	Logger    *slog.Logger
	// Trace also logs every pulse next to the effect.
	Trace bool
}

// New builds the pulser for mode. When the speaker cannot be opened the beep
// mode falls back to logging and returns the speaker error alongside it.
func New(mode Mode, options Options) (Pulser, error) {
	pulser, err := newEffect(mode, options)
	if pulser == nil || !options.Trace {
		return pulser, err
	}
	if _, logs := pulser.(*Logger); logs {
		return pulser, err
	}
	return Multi{pulser, NewLogger(options.Logger)}, err
}

func newEffect(mode Mode, options Options) (Pulser, error) {
	switch mode {
	case ModeOff:
		return Nop{}, nil
	case ModeLog:
		return NewLogger(options.Logger), nil
	case ModeBeep:
		beeper, err := NewBeeper(options.Frequency, options.Length)
		if err != nil {
			return NewLogger(options.Logger), err
		}
		return beeper, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}
