// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arteiii

package config

import (
	"time"
)

// Default values applied by [StructuredConfig.setDefaults] to fields that are
// still zero after every source has been merged.
const (
	DefaultHTTPAddress     = "0.0.0.0:8000"
	DefaultRequestTimeout  = 90 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultAllowedOrigin   = "http://192.168.178.58"
	DefaultLogLevel        = "info"
)

// StructuredConfig is the top-level configuration container for the authly
// server. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and timeout settings of the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the cross-origin policy applied to every route.
	CORS CORS `envPrefix:"CORS_"`

	// Log holds the logging filter.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server aborts it (e.g. "90s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// CORS holds the cross-origin resource sharing policy.
type CORS struct {
	// AllowedOrigins lists the origins allowed to make cross-origin
	// requests. "*" allows any origin.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level that is emitted
	// (trace, debug, info, warn, error, fatal, panic, disabled).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Fields still zero after merging receive their defaults. Returns a fully
// populated *StructuredConfig or an error if any source fails to load or the
// final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{DefaultAllowedOrigin}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
