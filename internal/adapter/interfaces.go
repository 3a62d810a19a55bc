// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the go-social-api HTTP API.
//
// [APIClient] wraps the auth, health and version endpoints. Error statuses
// are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] (e.g. [ErrUserNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

// APIClient talks to a go-social-api server. Register and Login remember the
// bearer token the server returns; Me sends it.
type APIClient interface {
	// SetToken stores the bearer token sent by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Me returns the user the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Health returns the server's store status. A disconnected store is
	// reported both in the status and as ErrUnavailable.
	Health(ctx context.Context) (models.HealthStatus, error)

	Version(ctx context.Context) (string, error)
}
