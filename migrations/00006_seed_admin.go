package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/lingualeap/lingualeap/internal/utils"
)

func init() {
	goose.AddMigrationContext(upSeedAdmin, downSeedAdmin)
}

// upSeedAdmin creates the default administrator account (admin / admin123).
// The hash is computed at migration time instead of being baked into SQL so
// every install gets its own salt. The password should be changed after the
// first sign-in.
func upSeedAdmin(ctx context.Context, tx *sql.Tx) error {
	hasher, err := utils.NewPasswordHasher("sha256", 32)
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	digest, salt, err := hasher.HashWithNewSalt("admin123")
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, salt, is_admin, is_active)
		VALUES (?, ?, ?, ?, 1, 1);`,
		"admin", "admin@lingualeap.com", digest, salt)
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	return nil
}

func downSeedAdmin(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM users WHERE username = 'admin';`)
	return err
}
