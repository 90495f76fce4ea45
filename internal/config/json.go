package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONConfig mirrors [Config] with json tags for file-based configuration.
type JSONConfig struct {
	App struct {
		Name            string `json:"name"`
		Version         string `json:"version"`
		DefaultLanguage string `json:"default_language"`
	} `json:"app,omitempty"`

	Security struct {
		SaltLength         int    `json:"salt_length"`
		HashAlgorithm      string `json:"hash_algorithm"`
		SessionExpiryDays  int    `json:"session_expiry_days"`
		TempPasswordLength int    `json:"temp_password_length"`
		MaxLoginAttempts   int    `json:"max_login_attempts"`
		StreakResetHours   int    `json:"streak_reset_hours"`
	} `json:"security,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"database_path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			Name:            jsonCfg.App.Name,
			Version:         jsonCfg.App.Version,
			DefaultLanguage: jsonCfg.App.DefaultLanguage,
		},
		Security: Security{
			SaltLength:         jsonCfg.Security.SaltLength,
			HashAlgorithm:      jsonCfg.Security.HashAlgorithm,
			SessionExpiryDays:  jsonCfg.Security.SessionExpiryDays,
			TempPasswordLength: jsonCfg.Security.TempPasswordLength,
			MaxLoginAttempts:   jsonCfg.Security.MaxLoginAttempts,
			StreakResetHours:   jsonCfg.Security.StreakResetHours,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
