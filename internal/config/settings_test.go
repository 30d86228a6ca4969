package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pulsetimer/internal/core/model"
	"pulsetimer/internal/haptics"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, haptics.ModeBeep, settings.PulseMode)
	assert.True(t, ValidFrameRate(settings.FrameRate))
	assert.True(t, ValidToneFrequency(settings.ToneFrequency))
	assert.True(t, ValidPulseLength(settings.PulseLength))
}

func TestRuntimeConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.FrameRate = 20
	assert.Equal(t, 50*time.Millisecond, settings.RuntimeConfig().FrameInterval)

	settings.FrameRate = 0
	assert.Equal(t, model.DefaultFrameInterval, settings.RuntimeConfig().FrameInterval)
}

func TestPulseOptions(t *testing.T) {
	settings := DefaultSettings()
	options := settings.PulseOptions()
	assert.Equal(t, settings.ToneFrequency, options.Frequency)
	assert.Equal(t, settings.PulseLength, options.Length)
}
