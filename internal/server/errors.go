// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler = errors.New("no handler to serve")
	errNoAddress = errors.New("no address to listen on")
)
