package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"

	defaultDotEnvPath = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-social-api",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: bcrypt.DefaultCost,
			LogLevel:         "debug",
			Version:          "dev",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:     ":8800",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			TrustedOrigins:  []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8800",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			HealthCheckInterval: 15 * time.Second,
		},
	}
}
