package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	checker store.HealthChecker
	version string
	logger  *logger.Logger
}

// NewHealthService returns a HealthService that pings the store on every Check.
func NewHealthService(checker store.HealthChecker, version string, logger *logger.Logger) HealthService {
	return &healthService{
		checker: checker,
		version: version,
		logger:  logger,
	}
}

func (s *healthService) Check(ctx context.Context) models.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	status := models.HealthStatus{Status: models.StatusConnected, Version: s.version}
	if err := s.checker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("store health check failed")
		status.Status = models.StatusDisconnected
	}
	return status
}
