package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lingualeap/lingualeap/internal/config"
	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/store"
	"github.com/lingualeap/lingualeap/models"
)

type progressService struct {
	lessons   store.LessonRepository
	exercises store.ExerciseRepository
	progress  store.ProgressRepository
	stats     store.StatsRepository
	streaks   store.StreakRepository

	streakReset time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewProgressService wires a ProgressService over the content and counter
// repositories.
func NewProgressService(storages *store.Storages, cfg config.Security, logger *logger.Logger) ProgressService {
	return &progressService{
		lessons:     storages.LessonRepository,
		exercises:   storages.ExerciseRepository,
		progress:    storages.ProgressRepository,
		stats:       storages.StatsRepository,
		streaks:     storages.StreakRepository,
		streakReset: cfg.StreakReset(),
		now:         time.Now,
		logger:      logger,
	}
}

// SubmitAnswer grades case-insensitively with surrounding whitespace ignored,
// so "  Hola " matches "hola". XP for the exercise is awarded only on a
// correct answer; the answer counters are updated either way.
func (s *progressService) SubmitAnswer(ctx context.Context, userID, exerciseID int64, answer string) (bool, error) {
	exercise, err := s.exercises.FindByID(ctx, exerciseID)
	if err != nil {
		return false, fmt.Errorf("exercise lookup failed: %w", err)
	}

	correct := strings.EqualFold(
		strings.TrimSpace(answer),
		strings.TrimSpace(exercise.CorrectAnswer),
	)

	if err := s.stats.RecordAnswer(ctx, userID, correct); err != nil {
		return false, fmt.Errorf("answer recording failed: %w", err)
	}

	if correct {
		if err := s.stats.AddXP(ctx, userID, exercise.XPReward); err != nil {
			return false, fmt.Errorf("xp update failed: %w", err)
		}
	}

	return correct, nil
}

// CompleteLesson awards the lesson's XP, bumps the lesson counter, and
// advances the streak only the first time a lesson is completed. Repeat
// completions keep the best score and touch nothing else.
func (s *progressService) CompleteLesson(ctx context.Context, userID, lessonID int64, score int) error {
	lesson, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("lesson lookup failed: %w", err)
	}

	existing, err := s.progress.FindByUserAndLesson(ctx, userID, lessonID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNoProgressWasFound):
		existing = models.UserProgress{UserID: userID, LessonID: lessonID}
	default:
		return fmt.Errorf("progress lookup failed: %w", err)
	}

	firstCompletion := !existing.Completed

	if firstCompletion {
		completedAt := s.now()
		existing.Completed = true
		existing.CompletionDate = &completedAt
		existing.Score = score
	} else if score > existing.Score {
		existing.Score = score
	}

	if err := s.progress.Upsert(ctx, existing); err != nil {
		return fmt.Errorf("progress update failed: %w", err)
	}

	if !firstCompletion {
		return nil
	}

	if err := s.stats.AddXP(ctx, userID, lesson.XPReward); err != nil {
		return fmt.Errorf("xp update failed: %w", err)
	}
	if err := s.stats.RecordLesson(ctx, userID); err != nil {
		return fmt.Errorf("lesson counter update failed: %w", err)
	}

	if err := s.advanceStreak(ctx, userID); err != nil {
		return fmt.Errorf("streak update failed: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("lesson_id", lessonID).
		Int("score", score).
		Msg("lesson completed")

	return nil
}

func (s *progressService) Dashboard(ctx context.Context, userID int64) (DashboardData, error) {
	stats, err := s.stats.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNoStatsWereFound) {
		return DashboardData{}, fmt.Errorf("stats lookup failed: %w", err)
	}

	streak, err := s.streaks.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNoStreakWasFound) {
		return DashboardData{}, fmt.Errorf("streak lookup failed: %w", err)
	}

	progress, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return DashboardData{}, fmt.Errorf("progress listing failed: %w", err)
	}

	return DashboardData{
		Stats:    stats,
		Streak:   streak,
		Progress: progress,
	}, nil
}

// advanceStreak applies the daily streak rules at the current time:
// a second activity on the same calendar day changes nothing, activity within
// the reset window extends the streak by one day, and anything later starts
// a new one-day streak. MaxStreak never decreases.
func (s *progressService) advanceStreak(ctx context.Context, userID int64) error {
	streak, err := s.streaks.FindByUser(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNoStreakWasFound):
		streak = models.UserStreak{UserID: userID}
	default:
		return err
	}

	activityAt := s.now()

	switch {
	case streak.LastActivityDate == nil:
		streak.CurrentStreak = 1
	case sameDay(*streak.LastActivityDate, activityAt):
		// Already counted today.
	case activityAt.Sub(*streak.LastActivityDate) <= s.streakReset:
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.MaxStreak {
		streak.MaxStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = &activityAt

	return s.streaks.Save(ctx, streak)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
