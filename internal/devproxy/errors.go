package devproxy

import "errors"

var (
	ErrInvalidRule   = errors.New("invalid proxy rule")
	ErrInvalidTarget = errors.New("invalid proxy target")
	ErrNoRule        = errors.New("no proxy rule matches path")
)
