// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming credential requests before they reach
// the auth flows.
//
// A Validator validates a value, optionally restricted to named fields.
// Failures are returned as the sentinel errors of errors.go, joined when
// several fields are wrong.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
