package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	// BaseURL is the API address, e.g. "http://localhost:8800".
	BaseURL string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the bearer token for authenticated commands.
	Token string
	// LogLevel is the client log level.
	LogLevel string
}

// GetClientConfig builds the client config from defaults, an optional JSON
// file named by CONFIG, the .env file and ADAPTER_* environment variables.
// Command-line arguments are left to the client's subcommands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder(nil).
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		BaseURL:        cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
		LogLevel:       cfg.App.LogLevel,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
