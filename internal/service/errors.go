package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/store"
)

// Error kinds returned by the auth flows. Every failure of RegisterUser,
// Login and GetUser matches exactly one of them with errors.Is.
var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrUserNotFound           = errors.New("user not found")
	ErrWrongPassword          = errors.New("wrong password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrOperationFailed        = errors.New("operation failed")
)

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// ordered: first match wins
var errorKinds = []struct {
	err  error
	name string
}{
	{ErrInvalidDataProvided, "InvalidDataProvided"},
	{ErrUserNotFound, "UserNotFound"},
	{ErrWrongPassword, "WrongPassword"},
	{ErrEmailAlreadyRegistered, "WriteConflict"},
	{ErrStoreUnavailable, "StoreUnavailable"},
	{ErrTokenCreationFailed, "TokenCreationFailed"},
	{ErrTokenIsExpiredOrInvalid, "TokenInvalid"},
	{ErrOperationFailed, "OperationFailed"},
}

// ErrorKind names the kind of err for logs. Unknown errors are "OperationFailed".
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}
	return "OperationFailed"
}

// fromStoreError translates a store error into exactly one service error
// kind. The store error text is kept for logs but is not matchable.
func fromStoreError(err error) error {
	var kind error
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		kind = ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		kind = ErrEmailAlreadyRegistered
	case errors.Is(err, store.ErrStoreUnavailable):
		kind = ErrStoreUnavailable
	case errors.Is(err, store.ErrInvalidUserRecord):
		kind = ErrInvalidDataProvided
	default:
		kind = ErrOperationFailed
	}
	return fmt.Errorf("%w: %v", kind, err)
}
