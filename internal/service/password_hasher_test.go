package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashVerifies(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"))

	ok, err := h.Verify("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestBcryptHasher_FreshSaltPerHash verifies that hashing the same password
// twice gives different outputs that both verify.
func TestBcryptHasher_FreshSaltPerHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, hash := range []string{first, second} {
		ok, err := h.Verify("secret123", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	ok, err := h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("secret123", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestBcryptHasher_VerifyLongPasswordNeverMatches(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	password := strings.Repeat("x", 72)

	hash, err := h.Hash(password)
	require.NoError(t, err)

	ok, err := h.Verify(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(password+"y", hash)
	require.NoError(t, err)
	assert.False(t, ok, "bcrypt only reads the first 72 bytes")

	_, err = h.Verify(password+"y", "not-a-bcrypt-hash")
	assert.Error(t, err)
}
