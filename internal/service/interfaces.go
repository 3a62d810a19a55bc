package service

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the registration and login flows and the bearer
// tokens issued after them.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PasswordHasher produces and verifies self-describing password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an error means the hash could not be checked at all.
	Verify(password, hash string) (bool, error)
}

// HealthService reports the store connectivity.
type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
