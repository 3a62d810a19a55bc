package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-social-api/internal/adapter"
	"github.com/MKhiriev/go-social-api/models"
)

// fakeClient is an in-memory adapter.APIClient.
type fakeClient struct {
	token     string
	lastReg   models.RegisterRequest
	loginErr  error
	health    models.HealthStatus
	healthErr error
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) Token() string         { return f.token }

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (models.User, error) {
	f.lastReg = req
	f.token = "reg.jwt"
	return models.User{UserID: "u1", Username: req.Username, Email: req.Email}, nil
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (models.User, error) {
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	f.token = "login.jwt"
	return models.User{UserID: "u1", Email: req.Email}, nil
}

func (f *fakeClient) Me(context.Context) (models.User, error) {
	if f.token == "" {
		return models.User{}, adapter.ErrUnauthorized
	}
	return models.User{UserID: "u1"}, nil
}

func (f *fakeClient) Health(context.Context) (models.HealthStatus, error) {
	return f.health, f.healthErr
}

func (f *fakeClient) Version(context.Context) (string, error) { return "9.9.9", nil }

func TestRun_Register(t *testing.T) {
	client := &fakeClient{}
	var out bytes.Buffer

	err := run(context.Background(), client,
		[]string{"register", "-username", "alice", "-email", "a@x.com", "-password", "secret123"}, &out)

	require.NoError(t, err)
	assert.Equal(t, models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret123"}, client.lastReg)

	var got authResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "reg.jwt", got.Token)
	assert.Equal(t, "alice", got.User.Username)
}

func TestRun_LoginError(t *testing.T) {
	client := &fakeClient{loginErr: adapter.ErrWrongPassword}

	err := run(context.Background(), client, []string{"login", "-email", "a@x.com", "-password", "wrong"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, adapter.ErrWrongPassword)
}

func TestRun_MeUsesTokenFlag(t *testing.T) {
	client := &fakeClient{}

	err := run(context.Background(), client, []string{"me"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	err = run(context.Background(), client, []string{"me", "-token", "given.jwt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "given.jwt", client.token)
}

func TestRun_HealthPrintsStatusOnError(t *testing.T) {
	client := &fakeClient{
		health:    models.HealthStatus{Status: models.StatusDisconnected},
		healthErr: adapter.ErrUnavailable,
	}
	var out bytes.Buffer

	err := run(context.Background(), client, []string{"health"}, &out)

	assert.ErrorIs(t, err, adapter.ErrUnavailable)
	assert.Contains(t, out.String(), models.StatusDisconnected)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &fakeClient{}, []string{"version"}, &out))

	assert.Contains(t, out.String(), "server: 9.9.9")
	assert.Contains(t, out.String(), "Build version: N/A")
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"delete"}, {"login", "-nope"}} {
		err := run(context.Background(), &fakeClient{}, args, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage, "args %v", args)
	}
}
