// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arteiii

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := validateAddress(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: no allowed origins", ErrInvalidCORSConfigs)
	}
	for _, origin := range cfg.CORS.AllowedOrigins {
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidCORSConfigs, origin, err)
		}
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *ProbeConfig) validate() error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidProbeConfigs, cfg.BaseURL)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidProbeConfigs)
	}

	return nil
}

func validateAddress(address string) error {
	_, rawPort, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q", rawPort)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range", port)
	}

	return nil
}

// validateOrigin accepts "*" or a scheme://host[:port] origin without path.
func validateOrigin(origin string) error {
	if origin == "*" {
		return nil
	}

	u, err := url.Parse(origin)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not contain a path, query or fragment")
	}

	return nil
}
