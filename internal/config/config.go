package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int   `env:"LOG_LEVEL" envDefault:"0"`
	LogJSON  bool  `env:"LOG_JSON" envDefault:"false"`
	API      API   `envPrefix:"API_"`
	State    State `envPrefix:"STATE_"`
	Audio    Audio `envPrefix:"AUDIO_"`
}

// API contains remote service parameters.
type API struct {
	BaseURL        string `env:"BASE_URL" envDefault:"http://localhost:8000"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"60"`
}

// State contains local state persistence parameters.
type State struct {
	DBPath string `env:"DB_PATH" envDefault:"savorly.db"`
}

// Audio contains audio capture parameters.
type Audio struct {
	CaptureCommand string `env:"CAPTURE_COMMAND" envDefault:"arecord"`
	SampleRate     int    `env:"SAMPLE_RATE" envDefault:"16000"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "SAVORLY_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
