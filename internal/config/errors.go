package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a malformed listen address or a zero timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCORSConfigs indicates an empty or malformed allowed-origin list.
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidProbeConfigs indicates invalid probe client settings
	// (for example, a base URL without scheme or host).
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
)
