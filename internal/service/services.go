package service

import (
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			NewBcryptHasher(cfg.App.PasswordHashCost),
			cfg.App,
			logger,
		),
		HealthService:  NewHealthService(storages.DB, cfg.App.Version, logger),
		AppInfoService: appInfoService,
	}, nil
}
