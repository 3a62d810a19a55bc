package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background workers. Listeners receive every
// store health transition.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger, listeners ...func(serving bool)) *Workers {
	return &Workers{workers: []Worker{
		NewHealthProbe(services.HealthService, cfg.HealthCheckInterval, logger, listeners...),
	}}
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
