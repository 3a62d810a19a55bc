package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/service"
)

// HealthProbe checks the store on a fixed interval and notifies listeners of
// the result. The first check runs immediately.
type HealthProbe struct {
	health    service.HealthService
	interval  time.Duration
	listeners []func(serving bool)

	logger *logger.Logger
}

func NewHealthProbe(health service.HealthService, interval time.Duration, logger *logger.Logger, listeners ...func(serving bool)) *HealthProbe {
	return &HealthProbe{
		health:    health,
		interval:  interval,
		listeners: listeners,
		logger:    logger,
	}
}

func (p *HealthProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("health probe started")
	defer p.logger.Info().Msg("health probe stopped")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var last *bool
	for {
		serving := p.health.Check(ctx).Serving()
		if last == nil || *last != serving {
			p.logger.Info().Bool("serving", serving).Msg("store health changed")
		}
		last = &serving

		for _, notify := range p.listeners {
			notify(serving)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
