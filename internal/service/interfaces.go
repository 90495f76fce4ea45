package service

import (
	"context"

	"github.com/lingualeap/lingualeap/models"
)

// AccountService covers the account lifecycle: registration, authentication,
// and credential or profile maintenance.
type AccountService interface {
	// Register creates a new account with the supplied identity and
	// password and returns the stored user. Uniqueness is checked before
	// the password policy, so a duplicate username is reported even when
	// the password is also weak.
	Register(ctx context.Context, username, email, password string) (models.User, error)

	// Authenticate verifies the supplied credentials and returns the
	// matching account with its last-login timestamp refreshed.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// ChangePassword replaces the password of the account identified by
	// userID after verifying currentPassword against the stored hash.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error

	// ResetPassword issues a temporary password for the account matching
	// email, stores its hash, and hands it to the configured delivery
	// channel. The temporary password is returned so the caller can show
	// it to the user.
	ResetPassword(ctx context.Context, email string) (string, error)

	// UpdateProfile changes username and/or email of the account
	// identified by userID. An empty field is left unchanged; a field
	// equal to the current value is not treated as a conflict.
	UpdateProfile(ctx context.Context, userID int64, username, email string) (models.User, error)
}

// CatalogService exposes the read-only learning content: languages, lesson
// categories, lessons, and exercises.
type CatalogService interface {
	Languages(ctx context.Context) ([]models.Language, error)
	Categories(ctx context.Context, languageID int64) ([]models.LessonCategory, error)
	Lessons(ctx context.Context, languageID, categoryID int64) ([]models.Lesson, error)
	Lesson(ctx context.Context, id int64) (models.Lesson, error)
	Exercises(ctx context.Context, lessonID int64) ([]models.Exercise, error)

	// DefaultLanguage resolves the language preselected in the browser:
	// the configured default code when it exists and is active, otherwise
	// the first active language.
	DefaultLanguage(ctx context.Context) (models.Language, error)

	// DeactivateLanguage hides the language from learners. Admin only;
	// lessons keep their rows, only the listing changes.
	DeactivateLanguage(ctx context.Context, language models.Language) error
}

// ProgressService records study activity and aggregates it for display.
type ProgressService interface {
	// SubmitAnswer grades answer against the exercise's expected response,
	// updates the per-user counters, and reports whether it was correct.
	SubmitAnswer(ctx context.Context, userID, exerciseID int64, answer string) (bool, error)

	// CompleteLesson marks the lesson finished with the given score,
	// awarding XP and advancing the streak on first completion. Repeat
	// completions only raise the stored score.
	CompleteLesson(ctx context.Context, userID, lessonID int64, score int) error

	// Dashboard collects the stats, streak, and per-lesson progress shown
	// on the user's home screen.
	Dashboard(ctx context.Context, userID int64) (DashboardData, error)
}

// DashboardData is the aggregate view backing the dashboard screen.
type DashboardData struct {
	Stats    models.UserStats
	Streak   models.UserStreak
	Progress []models.UserProgress
}
