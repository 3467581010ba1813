package config

import (
	"os"
	"strconv"
)

// FromEnv overlays PULSE_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("PULSE_FRAME_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FrameMs = n
		}
	}
	if v := os.Getenv("PULSE_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("PULSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PULSE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("PULSE_DEMO_EVENTS_PER_FRAME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Demo.EventsPerFrame = n
		}
	}
	if v := os.Getenv("PULSE_DEMO_FILTER"); v != "" {
		cfg.Demo.Filter = v
	}
}
