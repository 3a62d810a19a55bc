package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the [PasswordHasher] backed by golang.org/x/crypto/bcrypt.
// Every Hash call draws a fresh random salt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor.
// Zero selects bcrypt.DefaultCost (10).
func NewBcryptHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// maxPasswordBytes is the longest password Hash accepts.
const maxPasswordBytes = 72

// Verify reports whether password matches hash. Passwords longer than
// maxPasswordBytes never match, since bcrypt would compare only their prefix.
func (h *bcryptHasher) Verify(password, hash string) (bool, error) {
	if len(password) > maxPasswordBytes {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return false, fmt.Errorf("error verifying password: %w", err)
		}
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password: %w", err)
	}
}
