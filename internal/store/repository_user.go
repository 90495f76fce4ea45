package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, lookup, and credential updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash, user.Salt,
		user.RegistrationDate, user.IsAdmin, user.IsActive)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		if sentinel := uniqueViolationError(err); sentinel != nil {
			return models.User{}, sentinel
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: last insert id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.ID = id
	return user, nil
}

// FindUserByID retrieves the user record with the given id.
// Returns [ErrNoUserWasFound] when the id matches nothing.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

// FindUserByUsername retrieves the user record with the given username.
// The lookup is case-sensitive. Returns [ErrNoUserWasFound] when the
// username matches nothing.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, findUserByUsername, username)
}

// FindUserByEmail retrieves the user record with the given email.
// Returns [ErrNoUserWasFound] when the email matches nothing.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, findUserByEmail, email)
}

// findOne executes query exactly once and scans the first (only) row.
// An empty result set maps to [ErrNoUserWasFound].
func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	var found models.User
	var lastLogin sql.NullTime
	err := row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash, &found.Salt,
		&found.RegistrationDate, &lastLogin, &found.IsAdmin, &found.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if lastLogin.Valid {
		found.LastLogin = &lastLogin.Time
	}

	return found, nil
}

// UpdateUser persists the mutable profile fields (username, email,
// is_admin, is_active) of user. The UPDATE is built dynamically so the
// statement stays in one place as profile fields grow.
//
// Error handling mirrors [userRepository.CreateUser] for uniqueness
// violations; a vanished row maps to [ErrNoRowsAffected].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Update(user.TableName()).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("is_admin", user.IsAdmin).
		Set("is_active", user.IsActive).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: update failed")

		if sentinel := uniqueViolationError(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return checkRowsAffected(res)
}

// UpdatePassword replaces the stored credential pair of the user with the
// given id. Hash and salt always change together; there is no path that
// updates one without the other.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash, salt string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, salt, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return checkRowsAffected(res)
}

// UpdateLastLogin stamps the user's last_login column with user.LastLogin.
func (r *userRepository) UpdateLastLogin(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateUserLastLogin, user.LastLogin, user.ID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return checkRowsAffected(res)
}

// checkRowsAffected maps a zero-row DML result to [ErrNoRowsAffected].
func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
