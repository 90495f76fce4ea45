package store

import (
	"context"

	"github.com/lingualeap/lingualeap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository is the persistence boundary for user accounts.
// Lookups that match nothing return [ErrNoUserWasFound]; writes that violate
// a uniqueness constraint return [ErrUsernameAlreadyExists] or
// [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash, salt string) error
	UpdateLastLogin(ctx context.Context, user models.User) error
}

// LanguageRepository provides access to the language catalog.
type LanguageRepository interface {
	FindByCode(ctx context.Context, code string) (models.Language, error)
	ListActive(ctx context.Context) ([]models.Language, error)
	Save(ctx context.Context, language models.Language) error
}

// LessonFilter narrows a lesson listing. Zero-valued fields are ignored;
// OnlyActive additionally restricts results to active lessons.
type LessonFilter struct {
	LanguageID int64
	CategoryID int64
	OnlyActive bool
}

// LessonRepository provides access to lessons and their categories.
type LessonRepository interface {
	FindByID(ctx context.Context, id int64) (models.Lesson, error)
	List(ctx context.Context, filter LessonFilter) ([]models.Lesson, error)
	ListCategories(ctx context.Context, languageID int64) ([]models.LessonCategory, error)
}

// ExerciseRepository provides access to the exercises of a lesson.
type ExerciseRepository interface {
	FindByID(ctx context.Context, id int64) (models.Exercise, error)
	ListByLesson(ctx context.Context, lessonID int64) ([]models.Exercise, error)
}

// ProgressRepository stores per-user per-lesson progress rows.
type ProgressRepository interface {
	FindByUserAndLesson(ctx context.Context, userID, lessonID int64) (models.UserProgress, error)
	ListByUser(ctx context.Context, userID int64) ([]models.UserProgress, error)
	Upsert(ctx context.Context, progress models.UserProgress) error
}

// StatsRepository stores the per-user aggregate counters initialised at
// registration time.
type StatsRepository interface {
	InitForUser(ctx context.Context, userID int64) error
	FindByUser(ctx context.Context, userID int64) (models.UserStats, error)
	AddXP(ctx context.Context, userID int64, xp int) error
	RecordLesson(ctx context.Context, userID int64) error
	RecordAnswer(ctx context.Context, userID int64, correct bool) error
}

// StreakRepository stores the per-user streak counters initialised at
// registration time.
type StreakRepository interface {
	InitForUser(ctx context.Context, userID int64) error
	FindByUser(ctx context.Context, userID int64) (models.UserStreak, error)
	Save(ctx context.Context, streak models.UserStreak) error
}
