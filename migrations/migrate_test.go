package migrations

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lingualeap/lingualeap/internal/utils"
)

func TestMigrate_CreatesFullSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	tables := []string{
		"users", "languages", "lesson_categories", "lessons", "exercises",
		"user_progress", "achievements", "user_achievements", "user_streaks", "user_stats",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist after migration: %v", table, err)
		}
	}
}

func TestMigrate_SeedsLanguages(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM languages").Scan(&count); err != nil {
		t.Fatalf("failed counting languages: %v", err)
	}
	if count != 6 {
		t.Errorf("expected 6 seeded languages, got %d", count)
	}
}

func TestMigrate_SeedsAdminAccount(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	var hash, salt string
	var isAdmin, isActive bool
	err = db.QueryRow(
		"SELECT password_hash, salt, is_admin, is_active FROM users WHERE username = 'admin'",
	).Scan(&hash, &salt, &isAdmin, &isActive)
	if err != nil {
		t.Fatalf("expected seeded admin account: %v", err)
	}

	if !isAdmin {
		t.Error("expected seeded account to have is_admin set")
	}
	if !isActive {
		t.Error("expected seeded account to be active")
	}

	hasher, err := utils.NewPasswordHasher("sha256", 32)
	if err != nil {
		t.Fatalf("failed to create hasher: %v", err)
	}
	if !hasher.Verify("admin123", hash, salt) {
		t.Error("expected the default admin password to verify against the seeded hash")
	}
}

func TestMigrate_SeedsAchievements(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM achievements").Scan(&count); err != nil {
		t.Fatalf("failed counting achievements: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 seeded achievements, got %d", count)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migration run should be a no-op, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}
