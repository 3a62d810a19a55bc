package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
)

// Constructors only keep the services pointer, so nil services are enough here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{
			name:     "http and grpc",
			cfg:      config.Server{HTTPAddress: ":8800", GRPCAddress: ":9090"},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "http only",
			cfg:      config.Server{HTTPAddress: ":8800"},
			wantHTTP: true,
		},
		{
			name:     "grpc only",
			cfg:      config.Server{GRPCAddress: ":9090"},
			wantGRPC: true,
		},
		{
			name:    "no addresses",
			cfg:     config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestHandlers_HealthListeners(t *testing.T) {
	httpOnly, err := NewHandlers(nil, config.Server{HTTPAddress: ":8800"}, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, httpOnly.HealthListeners())

	both, err := NewHandlers(nil, config.Server{HTTPAddress: ":8800", GRPCAddress: ":9090"}, logger.Nop())
	require.NoError(t, err)
	listeners := both.HealthListeners()
	require.Len(t, listeners, 1)

	assert.NotPanics(t, func() { listeners[0](true) })
	assert.NotPanics(t, func() { listeners[0](false) })
}
