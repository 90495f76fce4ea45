package config

// supportedHashAlgorithms lists the digest names the credential hasher
// understands. Changing the algorithm invalidates every stored credential,
// so the set is deliberately small.
var supportedHashAlgorithms = map[string]struct{}{
	"sha256": {},
	"sha512": {},
}

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Security.SaltLength <= 0 {
		return ErrInvalidSecurityConfigs
	}

	if _, ok := supportedHashAlgorithms[cfg.Security.HashAlgorithm]; !ok {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Security.SessionExpiryDays <= 0 || cfg.Security.TempPasswordLength < 8 {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
