package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-social-api/internal/config"
	myGRPC "github.com/MKhiriev/go-social-api/internal/handler/grpc"
	"github.com/MKhiriev/go-social-api/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) listen() (net.Listener, error) {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	return lis, nil
}

func (g *grpcServer) serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server is listening")
	if err := g.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting calls and waits for in-flight ones; if ctx ends
// first the remaining calls are cut off.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server shutdown: %w", ctx.Err())
	}
}
