package views

import "errors"

var (
	ErrNoApp = errors.New("no app in request context")
)
