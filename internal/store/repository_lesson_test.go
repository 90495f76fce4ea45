package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/lingualeap/lingualeap/internal/logger"
)

var lessonColumns = []string{
	"id", "title", "description", "category_id", "language_id",
	"difficulty", "xp_reward", "order_index", "is_active",
}

func newTestLessonRepo(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &lessonRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestLessonList_NoFilter(t *testing.T) {
	repo, mock, db := newTestLessonRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(lessonColumns).
		AddRow(1, "Greetings", "Basic greetings", 1, 2, 1, 10, 1, true).
		AddRow(2, "Numbers", "Counting to ten", 1, 2, 1, 10, 2, false)

	// No filter fields set, so the statement carries no WHERE clause.
	mock.ExpectQuery(`SELECT (.+) FROM lessons ORDER BY order_index`).
		WillReturnRows(rows)

	lessons, err := repo.List(ctx, LessonFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if lessons[0].Title != "Greetings" {
		t.Errorf("expected order_index ordering, got %q first", lessons[0].Title)
	}
}

func TestLessonList_FullFilter(t *testing.T) {
	repo, mock, db := newTestLessonRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(lessonColumns).
		AddRow(1, "Greetings", "Basic greetings", 3, 2, 1, 10, 1, true)

	mock.ExpectQuery(`SELECT (.+) FROM lessons WHERE language_id = \? AND category_id = \? AND is_active = \? ORDER BY order_index`).
		WithArgs(int64(2), int64(3), true).
		WillReturnRows(rows)

	lessons, err := repo.List(ctx, LessonFilter{LanguageID: 2, CategoryID: 3, OnlyActive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
}

func TestLessonList_QueryError(t *testing.T) {
	repo, mock, db := newTestLessonRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM lessons`).
		WillReturnError(errors.New("db is locked"))

	_, err := repo.List(ctx, LessonFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestLessonFindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestLessonRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(lessonColumns))

	_, err := repo.FindByID(ctx, 99)
	if !errors.Is(err, ErrNoLessonWasFound) {
		t.Fatalf("expected ErrNoLessonWasFound, got %v", err)
	}
}

func TestListCategories_Success(t *testing.T) {
	repo, mock, db := newTestLessonRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "language_id"}).
		AddRow(1, "Basics", "Starter lessons", 2).
		AddRow(2, "Travel", "Phrases for the road", 2)

	mock.ExpectQuery(`FROM lesson_categories`).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	categories, err := repo.ListCategories(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
}
