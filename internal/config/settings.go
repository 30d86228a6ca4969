// Package config holds user preferences and their conversion to runtime
// configuration.
package config

import (
	"time"

	"pulsetimer/internal/core/model"
	"pulsetimer/internal/haptics"
)

// Settings defines editable user preferences.
type Settings struct {
	PulseMode     haptics.Mode
	ToneFrequency float64
	PulseLength   time.Duration
	FrameRate     int
}

// Accepted ranges for editable values.
const (
	MinFrameRate     = 10
	MaxFrameRate     = 120
	MinToneFrequency = 200.0
	MaxToneFrequency = 2000.0
	MinPulseLength   = 20 * time.Millisecond
	MaxPulseLength   = 500 * time.Millisecond
)

// DefaultSettings returns default settings.
func DefaultSettings() Settings {
	return Settings{
		PulseMode:     haptics.ModeBeep,
		ToneFrequency: 880,
		PulseLength:   60 * time.Millisecond,
		FrameRate:     60,
	}
}

// RuntimeConfig converts settings to the scheduler runtime config.
func (settings Settings) RuntimeConfig() model.RuntimeConfig {
	config := model.RuntimeConfig{}
	if settings.FrameRate > 0 {
		config.FrameInterval = time.Second / time.Duration(settings.FrameRate)
	}
	return config.Normalize()
}

// PulseOptions converts settings to pulser options.
func (settings Settings) PulseOptions() haptics.Options {
	return haptics.Options{
		Frequency: settings.ToneFrequency,
		Length:    settings.PulseLength,
	}
}

// ValidFrameRate reports whether rate is within the accepted range.
func ValidFrameRate(rate int) bool {
	return rate >= MinFrameRate && rate <= MaxFrameRate
}

// ValidToneFrequency reports whether frequency is within the accepted range.
func ValidToneFrequency(frequency float64) bool {
	return frequency >= MinToneFrequency && frequency <= MaxToneFrequency
}

// ValidPulseLength reports whether length is within the accepted range.
func ValidPulseLength(length time.Duration) bool {
	return length >= MinPulseLength && length <= MaxPulseLength
}
