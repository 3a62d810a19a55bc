package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/handler"
	"github.com/MKhiriev/go-social-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration

	// ready is closed once every configured listener is bound.
	ready chan struct{}
	addrs []net.Addr

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		ready:           make(chan struct{}),
		logger:          logger,
	}

	if cfg.HTTPAddress != "" {
		if handlers == nil || handlers.HTTP == nil {
			return nil, fmt.Errorf("HTTP: %w", errMissingHandler)
		}
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		if handlers == nil || handlers.GRPC == nil {
			return nil, fmt.Errorf("gRPC: %w", errMissingHandler)
		}
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer binds every configured listener, serves until ctx is cancelled
// or SIGTERM/SIGINT/SIGQUIT arrives, then shuts all servers down within the
// shutdown timeout. A listener that fails stops the others.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	httpLis, grpcLis, err := s.listen()
	if err != nil {
		return err
	}
	close(s.ready)

	errCh := make(chan error, 2)
	var wg sync.WaitGroup
	serve := func(run func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(); err != nil {
				errCh <- err
			}
		}()
	}
	if httpLis != nil {
		serve(func() error { return s.httpServer.serve(httpLis) })
	}
	if grpcLis != nil {
		serve(func() error { return s.gRPCServer.serve(grpcLis) })
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		s.logger.Error().Err(serveErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	shutdownErr := s.Shutdown(shutdownCtx)

	wg.Wait()
	close(errCh)
	errs := []error{serveErr, shutdownErr}
	for err := range errCh {
		errs = append(errs, err)
	}
	if err = errors.Join(errs...); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func (s *server) listen() (httpLis, grpcLis net.Listener, err error) {
	if s.httpServer != nil {
		if httpLis, err = s.httpServer.listen(); err != nil {
			return nil, nil, err
		}
		s.addrs = append(s.addrs, httpLis.Addr())
	}
	if s.gRPCServer != nil {
		if grpcLis, err = s.gRPCServer.listen(); err != nil {
			if httpLis != nil {
				_ = httpLis.Close()
			}
			return nil, nil, err
		}
		s.addrs = append(s.addrs, grpcLis.Addr())
	}
	return httpLis, grpcLis, nil
}
