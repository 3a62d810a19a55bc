package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/handler"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/mock"
	"github.com/MKhiriev/go-social-api/internal/service"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: 2 * time.Second,
	}
}

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test").AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

// runInBackground starts s and waits until its listeners are bound.
func runInBackground(t *testing.T, s *server) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	select {
	case <-s.ready:
	case err := <-done:
		cancel()
		t.Fatalf("server stopped before becoming ready: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("server did not become ready")
	}
	return cancel, done
}

func TestNewServer_Errors(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errMissingHandler)

	_, err = NewServer(nil, config.Server{GRPCAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errMissingHandler)
}

func TestRunServer_ServesAndShutsDown(t *testing.T) {
	s := newTestServer(t, testServerConfig())
	cancel, done := runInBackground(t, s)
	require.Len(t, s.addrs, 2)

	resp, err := http.Get(fmt.Sprintf("http://%s/api/version/", s.addrs[0]))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test", string(body))

	conn, err := grpc.NewClient(s.addrs[1].String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	hc, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, hc.GetStatus())

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = net.DialTimeout("tcp", s.addrs[0].String(), 200*time.Millisecond)
	assert.Error(t, err, "HTTP listener must be closed after shutdown")
}

func TestRunServer_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testServerConfig()
	cfg.GRPCAddress = busy.Addr().String()
	s := newTestServer(t, cfg)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}
