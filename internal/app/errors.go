package app

import "errors"

var (
	ErrAlreadyMounted   = errors.New("app is already mounted")
	ErrNoRouter         = errors.New("no router installed")
	ErrRouterInstalled  = errors.New("router is already installed")
	ErrInvalidAnchor    = errors.New("mount anchor must be an id selector like #app")
	ErrNilPlugin        = errors.New("nil plugin")
	ErrGlobalNotDefined = errors.New("global property is not defined")
)
