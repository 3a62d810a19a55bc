package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
)

// Storages aggregates the store handle and the repositories built on it.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to store: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating store: %w", err)
	}
	log.Info().Str("driver", cfg.DB.Driver).Msg("store migrations applied")

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, utils.NewUUIDGenerator(), log),
	}, nil
}

// Close closes the store handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}
