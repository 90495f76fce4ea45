// Package utils provides general-purpose helper utilities used across
// different parts of the application: password hashing and verification,
// the password strength policy, and one-time secret generation.
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"math/big"
	"strings"
	"unicode"
)

// PasswordHasher computes and verifies salted one-way password digests.
//
// The scheme is a single pass of a general-purpose digest over
// password bytes followed by salt bytes, rendered as a hex string. The salt
// is concatenated, not HMAC-mixed; both sides of the verification contract
// must use the same scheme.
type PasswordHasher struct {
	algorithm  string
	saltLength int
}

// NewPasswordHasher constructs a hasher for the given digest algorithm name
// ("sha256" or "sha512") and salt length in raw bytes. The stored salt is
// the hex rendering, twice as long as saltLength.
func NewPasswordHasher(algorithm string, saltLength int) (*PasswordHasher, error) {
	switch algorithm {
	case "sha256", "sha512":
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %q", algorithm)
	}

	if saltLength <= 0 {
		return nil, fmt.Errorf("salt length must be positive, got %d", saltLength)
	}

	return &PasswordHasher{algorithm: algorithm, saltLength: saltLength}, nil
}

// GenerateSalt produces a fresh random salt of the configured length,
// hex-encoded, from the operating system's CSPRNG.
func (h *PasswordHasher) GenerateSalt() (string, error) {
	raw := make([]byte, h.saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error reading random salt bytes: %w", err)
	}

	return hex.EncodeToString(raw), nil
}

// Hash computes the hex digest of password concatenated with salt.
// Side-effect free; the same inputs always produce the same output.
func (h *PasswordHasher) Hash(password, salt string) string {
	d := h.newDigest()
	d.Write([]byte(password))
	d.Write([]byte(salt))
	return hex.EncodeToString(d.Sum(nil))
}

// HashWithNewSalt generates a fresh salt and returns the digest of password
// under it, plus the salt itself for storage alongside the hash.
func (h *PasswordHasher) HashWithNewSalt(password string) (digest, salt string, err error) {
	salt, err = h.GenerateSalt()
	if err != nil {
		return "", "", err
	}

	return h.Hash(password, salt), salt, nil
}

// Verify recomputes the digest of password under storedSalt and compares it
// against storedHash in constant time.
func (h *PasswordHasher) Verify(password, storedHash, storedSalt string) bool {
	calculated := h.Hash(password, storedSalt)
	return subtle.ConstantTimeCompare([]byte(calculated), []byte(storedHash)) == 1
}

func (h *PasswordHasher) newDigest() hash.Hash {
	if h.algorithm == "sha512" {
		return sha512.New()
	}
	return sha256.New()
}

// IsPasswordStrong reports whether password satisfies the strength policy:
// at least 8 characters with at least one digit, one lowercase letter, and
// one uppercase letter. No special-character or dictionary requirement.
func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	return hasDigit && hasLower && hasUpper
}

// PasswordStrengthMessage returns user-facing feedback on password: one line
// per unmet strength requirement, or a single confirmation line when all
// requirements are met. Intended for display, not for control flow.
func PasswordStrengthMessage(password string) string {
	var messages []string

	if len(password) < 8 {
		messages = append(messages, "Password must be at least 8 characters long.")
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if !hasDigit {
		messages = append(messages, "Password must contain at least one digit.")
	}
	if !hasLower {
		messages = append(messages, "Password must contain at least one lowercase letter.")
	}
	if !hasUpper {
		messages = append(messages, "Password must contain at least one uppercase letter.")
	}

	if len(messages) == 0 {
		return "Password is strong enough."
	}

	return strings.Join(messages, "\n")
}

// tempPasswordAlphabet is the character set for generated temporary
// passwords: alphanumeric only, so they survive any delivery channel.
const tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTempPassword produces a random alphanumeric password of the given
// length, suitable for one-time-use secrets.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("temp password length must be positive, got %d", length)
	}

	alphabetLen := big.NewInt(int64(len(tempPasswordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("error reading random password bytes: %w", err)
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}

	return string(out), nil
}
