package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidClientConfigs indicates invalid backend client settings
	// (for example, an unparsable base URL or a non-positive timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidWebConfigs indicates invalid web server settings
	// (for example, a mount anchor that is not an id selector).
	ErrInvalidWebConfigs = errors.New("invalid web configuration")
	// ErrInvalidDevServerConfigs indicates invalid dev server settings
	// (for example, a missing proxy target).
	ErrInvalidDevServerConfigs = errors.New("invalid dev server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
