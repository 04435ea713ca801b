package state

import "errors"

var (
	ErrNoRegistry   = errors.New("state registry is not installed")
	ErrStoreType    = errors.New("store is already defined with another type")
	ErrEmptySession = errors.New("empty session id")
)
