package config

import (
	"flag"
	"fmt"
	"time"
)

const (
	DefaultProbeBaseURL = "http://localhost:8000"
	DefaultProbeTimeout = 5 * time.Second
)

// ProbeConfig holds the settings of the authly-probe command.
type ProbeConfig struct {
	// BaseURL is the root URL of the server under check.
	// Env: PROBE_ADDRESS
	BaseURL string `env:"ADDRESS"`
	// Timeout bounds every probe request.
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// LogLevel is the minimum log level of the probe.
	// Env: PROBE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

type probeEnv struct {
	Probe ProbeConfig `envPrefix:"PROBE_"`
}

// GetProbeConfig builds and validates the probe configuration from the
// environment and args. Flags override environment values.
func GetProbeConfig(args []string) (*ProbeConfig, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var fromEnv probeEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, err
	}
	cfg := fromEnv.Probe

	fs := flag.NewFlagSet("authly-probe", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "Server base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultProbeBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultProbeTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
