package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// FrameMs is the frame interval in milliseconds.
	FrameMs   int    `json:"frameMs"`
	HTTPAddr  string `json:"httpAddr"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
	Demo      Demo   `json:"demo"`
}

// Demo captures knobs for the built-in demo workload.
type Demo struct {
	// EventsPerFrame is how many events the demo producer sends each frame.
	EventsPerFrame int `json:"eventsPerFrame"`
	// Filter is an optional CEL expression applied by the demo consumer.
	Filter string `json:"filter"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		FrameMs:   16,
		HTTPAddr:  ":8080",
		LogLevel:  "info",
		LogFormat: "text",
		Demo: Demo{
			EventsPerFrame: 3,
		},
	}
}

// FrameInterval returns the frame interval as a duration, with a floor of
// one millisecond.
func (c Config) FrameInterval() time.Duration {
	if c.FrameMs < 1 {
		return time.Millisecond
	}
	return time.Duration(c.FrameMs) * time.Millisecond
}

// Validate rejects values the runtime cannot operate with.
func (c Config) Validate() error {
	if c.FrameMs < 0 {
		return fmt.Errorf("frameMs must be >= 0, got %d", c.FrameMs)
	}
	if c.Demo.EventsPerFrame < 0 {
		return fmt.Errorf("demo.eventsPerFrame must be >= 0, got %d", c.Demo.EventsPerFrame)
	}
	return nil
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
