package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsetimer/internal/config"
	"pulsetimer/internal/haptics"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	want := config.Settings{
		PulseMode:     haptics.ModeLog,
		ToneFrequency: 440,
		PulseLength:   120 * time.Millisecond,
		FrameRate:     30,
	}

	require.NoError(t, SaveSettingsFile(path, want))
	got, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadIgnoresOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	raw := "pulse_mode: vibrate\ntone_frequency_hz: 50000\npulse_length_ms: 5\nframe_rate: 24\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	defaults := config.DefaultSettings()
	assert.Equal(t, defaults.PulseMode, settings.PulseMode)
	assert.Equal(t, defaults.ToneFrequency, settings.ToneFrequency)
	assert.Equal(t, defaults.PulseLength, settings.PulseLength)
	assert.Equal(t, 24, settings.FrameRate)
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("frame_rate: [1, 2"), 0o644))

	settings, err := LoadSettingsFile(path)
	assert.ErrorContains(t, err, "parse settings yaml")
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestSettingsUnderUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	want := config.DefaultSettings()
	want.FrameRate = 45
	require.NoError(t, SaveSettings("PulseTimerTest", want))

	path, err := SettingsPath("PulseTimerTest")
	require.NoError(t, err)
	assert.FileExists(t, path)

	got, err := LoadSettings("PulseTimerTest")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
