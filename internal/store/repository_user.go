package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both dialects of [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db. ids produces
// the identifiers of new users.
func NewUserRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger: logger,
	}
}

// CreateUser assigns a fresh ID and creation time, inserts the record and
// returns it as stored.
//
// Error handling:
//   - empty username, email or password hash → [ErrInvalidUserRecord].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - connection-level failure → [ErrStoreUnavailable].
//   - any other driver error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || user.PasswordHash == "" {
		return models.User{}, ErrInvalidUserRecord
	}

	user.UserID = r.ids.Generate()
	user.CreatedAt = r.now()

	query, args, err := r.db.builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("pg_code", postgresError(err)).Msg("error inserting user")
		return models.User{}, r.db.wrapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, r.db.wrapError(err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotSaved
	}

	log.Debug().Str("user_id", user.UserID).Msg("user created")
	return user, nil
}

// FindUserByEmail returns the user whose email matches exactly
// (case-sensitive), or [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

// FindUserByID returns the user with the given ID, or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"user_id": userID})
}

func (r *userRepository) findOne(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case errors.Is(err, ErrScanningRow):
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error scanning user")
		return models.User{}, err
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findOne").Str("pg_code", postgresError(err)).Msg("error querying user")
		return models.User{}, r.db.wrapError(err)
	}

	return foundUser, nil
}

// scanUser reads a row in [userColumns] order. Query errors and
// [sql.ErrNoRows] are returned unchanged; conversion failures are wrapped
// with [ErrScanningRow].
func scanUser(row *sql.Row) (models.User, error) {
	if err := row.Err(); err != nil {
		return models.User{}, err
	}

	var user models.User
	err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, err
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return user, nil
}
