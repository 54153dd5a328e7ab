// Package config loads command configuration from environment variables
// (optionally seeded from a .env file) with defaults, and validates it.
package config

import "time"

// Config holds all command configuration.
// All settings can be configured via environment variables; command-line
// flags override them.
type Config struct {
	Pipeline PipelineConfig
	Logging  LoggingConfig
}

// PipelineConfig holds producer/consumer run settings.
type PipelineConfig struct {
	// Capacity is the bounded queue size (default: 3)
	Capacity int `env:"PIPELINE_CAPACITY" default:"3"`

	// Queue selects the queue implementation: cond or channel (default: cond)
	Queue string `env:"PIPELINE_QUEUE" default:"cond"`

	// Items is how many values the demo producer emits (default: 10)
	Items int `env:"PIPELINE_ITEMS" default:"10"`

	// Timeout bounds a whole run; 0 disables it (default: 0s)
	Timeout time.Duration `env:"PIPELINE_TIMEOUT" default:"0s"`

	// ProgressInterval is how often progress is logged; 0 disables it (default: 0s)
	ProgressInterval time.Duration `env:"PIPELINE_PROGRESS_INTERVAL" default:"0s"`

	// ProgressEvery checks the progress clock only every N items (default: 1)
	ProgressEvery int `env:"PIPELINE_PROGRESS_EVERY" default:"1"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log output format: text, json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
