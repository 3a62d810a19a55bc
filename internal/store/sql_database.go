// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/migrations"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 4
	connMaxLifetime = 30 * time.Minute
)

// DB is the credential store handle: a *sql.DB plus its dialect and an
// explicit connected/disconnected state.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	connected          atomic.Bool
	closed             atomic.Bool
	logger             *logger.Logger
}

// NewDB opens and pings the database selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	db := &DB{
		DB:                 conn,
		driver:             driver,
		placeholder:        sq.Question,
		errorClassificator: classifier,
		logger:             log,
	}
	if driver == config.DriverPostgres {
		db.placeholder = sq.Dollar
	}
	return db
}

// Migrate applies the embedded migrations of the handle's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// Ping checks the connection and updates the connected state.
// It returns an error wrapping [ErrStoreUnavailable] when the ping fails.
func (db *DB) Ping(ctx context.Context) error {
	err := db.PingContext(ctx)
	connected := err == nil

	if was := db.connected.Swap(connected); was != connected {
		if connected {
			db.logger.Info().Str("driver", db.driver).Msg("database is connected")
		} else {
			db.logger.Warn().Err(err).Str("driver", db.driver).Msg("database is disconnected")
		}
	}

	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Connected reports the state observed by the last Ping or query.
func (db *DB) Connected() bool {
	return db.connected.Load()
}

// Close releases the connection pool; the handle reports disconnected afterwards.
func (db *DB) Close() error {
	db.closed.Store(true)
	db.connected.Store(false)
	return db.DB.Close()
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// wrapError translates a driver error into a store sentinel error.
func (db *DB) wrapError(err error) error {
	switch db.classify(err) {
	case Conflict:
		return ErrEmailAlreadyExists
	case Retryable:
		if isConnectionError(err) {
			db.connected.Store(false)
		}
		return errors.Join(ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func (db *DB) classify(err error) ErrorClassification {
	if db.closed.Load() || isConnectionError(err) {
		return Retryable
	}
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// isConnectionError reports driver-independent connection failures.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
