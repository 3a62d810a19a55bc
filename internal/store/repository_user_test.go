package store

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	db := newDB(conn, config.DriverPostgres, NewPostgresErrorClassifier(), l)
	db.connected.Store(true)

	repo := &userRepository{
		db:     db,
		ids:    fixedID("0192a7a8-1111-7000-8000-000000000001"),
		now:    func() time.Time { return fixedNow },
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

// ── CreateUser ──

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "john", Email: "john@x.io", PasswordHash: "$2a$10$hash"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs("0192a7a8-1111-7000-8000-000000000001", "john", "john@x.io", "$2a$10$hash", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "0192a7a8-1111-7000-8000-000000000001", created.UserID)
	assert.Equal(t, "john", created.Username)
	assert.Equal(t, "john@x.io", created.Email)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_RejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{"empty username", models.User{Email: "a@x.io", PasswordHash: "h"}},
		{"empty email", models.User{Username: "a", PasswordHash: "h"}},
		{"empty hash", models.User{Username: "a", Email: "a@x.io"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			_, err := repo.CreateUser(context.Background(), tt.user)

			assert.ErrorIs(t, err, ErrInvalidUserRecord)
			assert.NoError(t, mock.ExpectationsWereMet(), "no query expected")
		})
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john", Email: "john@x.io", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_StoreUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"pg connection failure", pgError(pgerrcode.ConnectionFailure)},
		{"network error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Username: "john", Email: "john@x.io", PasswordHash: "h"})
			assert.ErrorIs(t, err, ErrStoreUnavailable)
		})
	}
}

func TestCreateUser_NetworkErrorMarksDisconnected(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	require.True(t, repo.db.Connected())

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset")})

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john", Email: "john@x.io", PasswordHash: "h"})
	require.Error(t, err)
	assert.False(t, repo.db.Connected())
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john", Email: "john@x.io", PasswordHash: "h"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"), "got %v", err)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}

func TestCreateUser_NoRowsAffected(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john", Email: "john@x.io", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUserNotSaved)
}

// ── FindUserByEmail / FindUserByID ──

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("id-1", "john", "john@x.io", "$2a$10$hash", fixedNow)

	mock.ExpectQuery(`SELECT user_id, username, email, password_hash, created_at FROM users WHERE email = \$1 LIMIT 1`).
		WithArgs("john@x.io").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "john@x.io")

	require.NoError(t, err)
	assert.Equal(t, models.User{
		UserID:       "id-1",
		Username:     "john",
		Email:        "john@x.io",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    fixedNow,
	}, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost@x.io").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@x.io")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByEmail_StoreUnavailable(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@x.io").
		WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := repo.FindUserByEmail(context.Background(), "john@x.io")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@x.io").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(context.Background(), "john@x.io")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindUserByEmail_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// wrong shape → scan error
	rows := sqlmock.NewRows([]string{"user_id"}).AddRow("id-1")
	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@x.io").
		WillReturnRows(rows)

	_, err := repo.FindUserByEmail(context.Background(), "john@x.io")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("id-1", "john", "john@x.io", "h", fixedNow)
	mock.ExpectQuery(`FROM users WHERE user_id = \$1`).
		WithArgs("id-1").
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), "id-1")

	require.NoError(t, err)
	assert.Equal(t, "id-1", found.UserID)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("id-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), "id-404")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
