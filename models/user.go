package models

import "time"

// User represents an account entity used for authentication and
// authorization. It contains identity attributes and credential-related
// data. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user. It is the stable
	// reference to the account; username and email may change over time.
	ID int64 `json:"-"`

	// Username is the unique, case-sensitive login identifier.
	Username string `json:"username"`

	// Email is the unique contact address, used by the password reset flow.
	Email string `json:"email"`

	// PasswordHash is the hex digest of the current plaintext password
	// concatenated with Salt. The plaintext is never persisted.
	PasswordHash string `json:"-"`

	// Salt is the random per-password value mixed into PasswordHash.
	// Regenerated every time the password is set.
	Salt string `json:"-"`

	// RegistrationDate is the timestamp the account was created.
	RegistrationDate time.Time `json:"registration_date"`

	// LastLogin is the timestamp of the most recent successful
	// authentication. Nil until the first login.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// IsAdmin marks administrator accounts.
	IsAdmin bool `json:"is_admin"`

	// IsActive is the account-enabled flag. Disabled accounts cannot
	// authenticate even with valid credentials.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
