// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged [StructuredConfig] can start the server.
// All violations are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, fmt.Errorf("%w: no server address", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs))
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost))
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: zero health check interval", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
