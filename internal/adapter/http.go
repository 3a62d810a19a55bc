package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClient constructs the resty implementation of [APIClient] for the
// server at cfg.BaseURL. A scheme-less address is treated as http.
func NewHTTPClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			logger.Debug().Str("method", req.Method).Str("url", req.URL).Msg("API request")
			return nil
		})

	c := &httpAPIClient{client: client, logger: logger}
	c.SetToken(cfg.Token)
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errAddressFormat
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAPIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpAPIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register sends POST /api/auth/register and keeps the returned token.
func (c *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/register", req)
}

// Login sends POST /api/auth/login and keeps the returned token.
func (c *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/login", req)
}

func (c *httpAPIClient) authenticate(ctx context.Context, path string, body any) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	c.SetToken(token)
	return user, nil
}

// Me sends GET /api/auth/me with the stored token.
func (c *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	token := c.Token()
	if token == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, errNoToken)
	}

	var user models.User
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Health sends GET /api/health.
func (c *httpAPIClient) Health(ctx context.Context) (models.HealthStatus, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}

	var status models.HealthStatus
	if decodeErr := json.Unmarshal(resp.Body(), &status); decodeErr != nil {
		if err = mapHTTPError(resp); err != nil {
			return models.HealthStatus{}, err
		}
		return models.HealthStatus{}, fmt.Errorf("decode health response: %w", decodeErr)
	}

	return status, mapHTTPError(resp)
}

// Version sends GET /api/version/.
func (c *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
