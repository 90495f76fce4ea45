package config

import (
	"time"
)

// Config is the top-level configuration container for the lingualeap
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the display name and
	// the default interface language.
	App App `envPrefix:"APP_"`

	// Security holds the credential-hashing and session-lifetime policy.
	Security Security `envPrefix:"SECURITY_"`

	// Storage holds the SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is the display name of the application.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DefaultLanguage is the ISO code of the interface language preselected
	// for new users (e.g. "en").
	// Env: APP_DEFAULT_LANGUAGE
	DefaultLanguage string `env:"DEFAULT_LANGUAGE"`
}

// Security holds the credential and session policy consumed by the account
// and session services.
type Security struct {
	// SaltLength is the number of random bytes in a freshly generated
	// password salt. The stored salt is the hex rendering, twice as long.
	// Env: SECURITY_SALT_LENGTH
	SaltLength int `env:"SALT_LENGTH"`

	// HashAlgorithm is the digest algorithm name used for password hashing
	// ("sha256" or "sha512"). Changing it invalidates stored credentials.
	// Env: SECURITY_HASH_ALGORITHM
	HashAlgorithm string `env:"HASH_ALGORITHM"`

	// SessionExpiryDays is the validity window of an authenticated session.
	// Expiry is evaluated lazily on read; there is no background eviction.
	// Env: SECURITY_SESSION_EXPIRY_DAYS
	SessionExpiryDays int `env:"SESSION_EXPIRY_DAYS"`

	// TempPasswordLength is the length of the alphanumeric temporary
	// password issued by the reset flow.
	// Env: SECURITY_TEMP_PASSWORD_LENGTH
	TempPasswordLength int `env:"TEMP_PASSWORD_LENGTH"`

	// MaxLoginAttempts is the configured lockout threshold. It is carried
	// in the configuration but not enforced anywhere yet.
	// Env: SECURITY_MAX_LOGIN_ATTEMPTS
	MaxLoginAttempts int `env:"MAX_LOGIN_ATTEMPTS"`

	// StreakResetHours is the number of hours of inactivity after which a
	// user's daily streak resets to zero.
	// Env: SECURITY_STREAK_RESET_HOURS
	StreakResetHours int `env:"STREAK_RESET_HOURS"`
}

// Storage holds the SQLite database settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path to the SQLite database file
	// (e.g. "lingualeap.db" or an absolute path under the user data dir).
	// Env: STORAGE_DB_DATABASE_PATH
	DSN string `env:"DATABASE_PATH"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// SessionExpiry returns the session validity window as a duration.
func (s Security) SessionExpiry() time.Duration {
	return time.Duration(s.SessionExpiryDays) * 24 * time.Hour
}

// StreakReset returns the streak reset threshold as a duration.
func (s Security) StreakReset() time.Duration {
	return time.Duration(s.StreakResetHours) * time.Hour
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero
// value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
