package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-social-api/internal/store"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrUserNotFound, "UserNotFound"},
		{fmt.Errorf("login: %w", ErrWrongPassword), "WrongPassword"},
		{ErrEmailAlreadyRegistered, "WriteConflict"},
		{ErrStoreUnavailable, "StoreUnavailable"},
		{ErrInvalidDataProvided, "InvalidDataProvided"},
		{ErrTokenIsExpiredOrInvalid, "TokenInvalid"},
		{errors.New("anything"), "OperationFailed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorKind(tt.err))
	}
}

// TestFromStoreError_ExactlyOneKind verifies that a translated store error
// matches exactly one service error kind.
func TestFromStoreError_ExactlyOneKind(t *testing.T) {
	storeErrs := []error{
		store.ErrNoUserWasFound,
		store.ErrEmailAlreadyExists,
		errors.Join(store.ErrStoreUnavailable, errors.New("dial")),
		store.ErrInvalidUserRecord,
		store.ErrScanningRow,
		errors.New("unexpected DB error"),
	}
	kinds := []error{
		ErrInvalidDataProvided,
		ErrUserNotFound,
		ErrWrongPassword,
		ErrEmailAlreadyRegistered,
		ErrStoreUnavailable,
		ErrOperationFailed,
	}

	for _, storeErr := range storeErrs {
		translated := fromStoreError(storeErr)

		matches := 0
		for _, kind := range kinds {
			if errors.Is(translated, kind) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "store error %q", storeErr)
	}
}
