package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUser_JSONNeverContainsPasswordHash verifies that the hash is stripped
// whenever a user is serialized for a client.
func TestUser_JSONNeverContainsPasswordHash(t *testing.T) {
	u := User{
		UserID:       "0192a7a8-0000-7000-8000-000000000001",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuBb2Q0nFvQH7l8d0bGqvS1D6f5Q8o7m",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, "a@x.com", fields["email"])
	assert.Equal(t, u.UserID, fields["id"])
	assert.NotContains(t, string(data), u.PasswordHash)
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "PasswordHash")
}

func TestHealthStatus_Serving(t *testing.T) {
	assert.True(t, HealthStatus{Status: StatusConnected}.Serving())
	assert.False(t, HealthStatus{Status: StatusDisconnected}.Serving())
	assert.False(t, HealthStatus{}.Serving())
}

func TestToken_AuthorizationHeader(t *testing.T) {
	tok := Token{SignedString: "aaa.bbb.ccc", UserID: "u-1"}

	assert.Equal(t, "Bearer aaa.bbb.ccc", tok.AuthorizationHeader())
	assert.Equal(t, "aaa.bbb.ccc", tok.String())

	data, err := json.Marshal(tok)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "aaa.bbb.ccc")
}
