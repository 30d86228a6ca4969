package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pulsetimer/internal/config"
	"pulsetimer/internal/haptics"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PulseMode        string  `yaml:"pulse_mode"`
	ToneFrequencyHz  float64 `yaml:"tone_frequency_hz"`
	PulseLengthMilli int     `yaml:"pulse_length_ms"`
	FrameRate        int     `yaml:"frame_rate"`
}

// LoadSettings reads user preferences from the per-user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (config.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return config.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to the per-user config directory.
func SaveSettings(appName string, settings config.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads user preferences from path. Values outside the
// accepted ranges keep their defaults.
func LoadSettingsFile(path string) (config.Settings, error) {
	settings := config.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to path.
func SaveSettingsFile(path string, settings config.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		PulseMode:        string(settings.PulseMode),
		ToneFrequencyHz:  settings.ToneFrequency,
		PulseLengthMilli: int(settings.PulseLength / time.Millisecond),
		FrameRate:        settings.FrameRate,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *config.Settings, fileData yamlSettings) {
	if mode, err := haptics.ParseMode(fileData.PulseMode); err == nil {
		settings.PulseMode = mode
	}
	if config.ValidToneFrequency(fileData.ToneFrequencyHz) {
		settings.ToneFrequency = fileData.ToneFrequencyHz
	}
	if length := time.Duration(fileData.PulseLengthMilli) * time.Millisecond; config.ValidPulseLength(length) {
		settings.PulseLength = length
	}
	if config.ValidFrameRate(fileData.FrameRate) {
		settings.FrameRate = fileData.FrameRate
	}
}
