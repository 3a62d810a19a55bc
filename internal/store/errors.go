package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored (unique index on users.email).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidUserRecord is returned by CreateUser when username, email or
	// password hash is empty.
	ErrInvalidUserRecord = errors.New("invalid user record")

	// ErrStoreUnavailable is returned when the database cannot be reached.
	// The original driver error is joined to it.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnsupportedDriver is returned by NewDB for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning a user row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrUserNotSaved is returned when an INSERT reports zero affected rows.
	ErrUserNotSaved = errors.New("user was not saved")
)
