package router

import "errors"

var (
	ErrNoMatch         = errors.New("no route matches path")
	ErrInvalidRoute    = errors.New("invalid route")
	ErrDuplicateRoute  = errors.New("duplicate route")
	ErrNotSubmittable  = errors.New("route does not accept submissions")
	ErrUnknownRoute    = errors.New("unknown route name")
	ErrNilLoadedResult = errors.New("loader returned nil component")
)
