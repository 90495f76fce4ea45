package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

var languageColumns = []string{"id", "code", "name", "is_active"}

func newTestLanguageRepo(t *testing.T) (*languageRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &languageRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestLanguageFindByCode_Success(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`WHERE code = \?`).
		WithArgs("es").
		WillReturnRows(sqlmock.NewRows(languageColumns).AddRow(2, "es", "Spanish", true))

	lang, err := repo.FindByCode(ctx, "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang.Name != "Spanish" || !lang.IsActive {
		t.Errorf("unexpected language: %+v", lang)
	}
}

func TestLanguageFindByCode_NotFound(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`WHERE code = \?`).
		WithArgs("xx").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByCode(ctx, "xx")
	if !errors.Is(err, ErrNoLanguageWasFound) {
		t.Fatalf("expected ErrNoLanguageWasFound, got %v", err)
	}
}

func TestLanguageListActive(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(languageColumns).
		AddRow(1, "en", "English", true).
		AddRow(2, "es", "Spanish", true)

	mock.ExpectQuery(`WHERE is_active = 1`).
		WillReturnRows(rows)

	languages, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(languages) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(languages))
	}
	if languages[0].Code != "en" {
		t.Errorf("expected name ordering, got %q first", languages[0].Code)
	}
}

func TestLanguageSave_Upsert(t *testing.T) {
	repo, mock, db := newTestLanguageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO languages`).
		WithArgs("fr", "French", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(ctx, models.Language{Code: "fr", Name: "French", IsActive: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
