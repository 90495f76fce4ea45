package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an INSERT or UPDATE on the
	// users table violates the unique constraint on the username column.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE on the
	// users table violates the unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoLanguageWasFound is returned when a language lookup by code
	// produces an empty result set.
	ErrNoLanguageWasFound = errors.New("no language was found")

	// ErrNoLessonWasFound is returned when a lesson lookup by id produces
	// an empty result set.
	ErrNoLessonWasFound = errors.New("no lesson was found")

	// ErrNoExerciseWasFound is returned when an exercise lookup by id
	// produces an empty result set.
	ErrNoExerciseWasFound = errors.New("no exercise was found")

	// ErrNoProgressWasFound is returned when no progress row exists for the
	// requested user/lesson pair.
	ErrNoProgressWasFound = errors.New("no progress record was found")

	// ErrNoStatsWereFound is returned when the per-user aggregate row is
	// missing, which indicates an account created without its auxiliary
	// records.
	ErrNoStatsWereFound = errors.New("no user stats were found")

	// ErrNoStreakWasFound is returned when the per-user streak row is
	// missing.
	ErrNoStreakWasFound = errors.New("no user streak was found")

	// ErrNoRowsAffected is returned when a DML statement completes without
	// error but changes nothing, meaning the targeted row does not exist.
	ErrNoRowsAffected = errors.New("no rows were affected")
)

// Low-level database operation errors, wrapped around driver failures before
// any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// uniqueViolationError maps a SQLite unique-constraint failure to the
// column-specific sentinel error. SQLite reports the violated constraint as
// "UNIQUE constraint failed: <table>.<column>" in the error message, which
// is the only way the driver exposes the column.
func uniqueViolationError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return nil
	}

	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return ErrUsernameAlreadyExists
	case strings.Contains(msg, "users.email"):
		return ErrEmailAlreadyExists
	default:
		return nil
	}
}
