package store

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser persists a new record with a fresh ID and returns it as stored.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the record whose email matches exactly.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the record with the given ID.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// HealthChecker reports the connected/disconnected state of the store.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Connected() bool
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
