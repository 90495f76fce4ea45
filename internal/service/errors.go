package service

import "errors"

// Sentinel errors returned by service operations. The message text is
// user-facing; the TUI shows it verbatim. Callers that need to branch should
// match with [errors.Is].
var (
	// ErrUsernameTaken is returned by registration and profile update when
	// the requested username belongs to another account.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrEmailTaken is returned by registration and profile update when the
	// requested email belongs to another account.
	ErrEmailTaken = errors.New("email is already in use")

	// ErrWeakPassword is returned when a new password fails the strength
	// policy. Use utils.PasswordStrengthMessage for per-requirement detail.
	ErrWeakPassword = errors.New("password does not meet security requirements")

	// ErrInvalidCredentials is returned on authentication failure. An
	// unknown username and a wrong password produce this same error so the
	// response does not leak which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountDisabled is returned when credentials are presented for an
	// account whose is_active flag is off. Deliberately distinct from
	// ErrInvalidCredentials: the account exists but was deactivated.
	ErrAccountDisabled = errors.New("account has been deactivated")

	// ErrAccountNotFound is returned by operations addressed to a known
	// identity (password change, profile update) when the id matches
	// nothing.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCurrentPassword is returned by the password change flow
	// when the supplied current password does not verify.
	ErrInvalidCurrentPassword = errors.New("invalid current password")

	// ErrEmailNotFound is returned by the password reset flow when no
	// account matches the supplied email.
	ErrEmailNotFound = errors.New("no account found with that email address")

	// ErrNoLanguages is returned when no active language exists to resolve
	// a default from.
	ErrNoLanguages = errors.New("no languages are available")
)
