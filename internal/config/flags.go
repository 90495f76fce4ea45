package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-salt-length salt length in bytes
//	-hash-algorithm password digest algorithm name
//	-session-expiry-days session validity window in days
//	-temp-password-length generated temporary password length
//	-log-level minimum log level
func ParseFlags() *Config {
	var databasePath string
	var jsonConfigPath string
	var saltLength int
	var hashAlgorithm string
	var sessionExpiryDays int
	var tempPasswordLength int
	var logLevel string

	flag.StringVar(&databasePath, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&saltLength, "salt-length", 0, "Password salt length in bytes")
	flag.StringVar(&hashAlgorithm, "hash-algorithm", "", "Password digest algorithm (sha256, sha512)")
	flag.IntVar(&sessionExpiryDays, "session-expiry-days", 0, "Session validity window in days")
	flag.IntVar(&tempPasswordLength, "temp-password-length", 0, "Temporary password length")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")

	flag.Parse()

	return &Config{
		Security: Security{
			SaltLength:         saltLength,
			HashAlgorithm:      hashAlgorithm,
			SessionExpiryDays:  sessionExpiryDays,
			TempPasswordLength: tempPasswordLength,
		},
		Storage: Storage{
			DB: DB{
				DSN: databasePath,
			},
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
