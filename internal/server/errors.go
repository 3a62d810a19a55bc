// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the handlers carry
	// neither transport.
	errNoServersAreCreated = errors.New("server: nothing to serve")

	// errMissingHandler is returned when a listen address is set but the
	// matching handler was not built.
	errMissingHandler = errors.New("server: listen address has no handler")
)
