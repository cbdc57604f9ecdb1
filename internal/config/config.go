package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Tour    TourConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// TourConfig holds tour execution configuration.
type TourConfig struct {
	Workers     int     `envconfig:"TOUR_WORKERS" default:"3"`
	SleepMillis int     `envconfig:"TOUR_SLEEP_MS" default:"100"`
	EnvSample   int     `envconfig:"TOUR_ENV_SAMPLE" default:"3"`
	PaceHz      float64 `envconfig:"TOUR_PACE_HZ" default:"0"`
	ProgramFile string  `envconfig:"TOUR_PROGRAM" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Tour: TourConfig{
			Workers:     3,
			SleepMillis: 100,
			EnvSample:   3,
			PaceHz:      0,
		},
	}
}
