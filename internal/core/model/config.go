package model

import "time"

// DefaultFrameInterval paces sweep updates at roughly 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// RuntimeConfig contains runtime settings for the pulse scheduler.
type RuntimeConfig struct {
	// FrameInterval is the spacing between progress updates within a sweep.
	FrameInterval time.Duration
}

// DefaultRuntimeConfig returns the runtime settings used when none are given.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{FrameInterval: DefaultFrameInterval}
}

// Normalize fills zero or negative values with defaults.
func (config RuntimeConfig) Normalize() RuntimeConfig {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultFrameInterval
	}
	return config
}
