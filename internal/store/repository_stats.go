package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

type statsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStatsRepository constructs a [StatsRepository] backed by the provided
// database connection and logger.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// InitForUser creates the zeroed aggregate row for a freshly registered
// account. Called once per user right after account creation.
func (r *statsRepository) InitForUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, initUserStats, userID); err != nil {
		log.Err(err).Str("func", "*statsRepository.InitForUser").Msg("error: insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *statsRepository) FindByUser(ctx context.Context, userID int64) (models.UserStats, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findStatsByUser, userID)

	var found models.UserStats
	err := row.Scan(&found.UserID, &found.TotalXP, &found.LessonsCompleted,
		&found.ExercisesCompleted, &found.CorrectAnswers, &found.IncorrectAnswers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserStats{}, ErrNoStatsWereFound
		}
		log.Err(err).Str("func", "*statsRepository.FindByUser").Msg("error: scanning error")
		return models.UserStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func (r *statsRepository) AddXP(ctx context.Context, userID int64, xp int) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, addStatsXP, xp, userID)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.AddXP").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return checkRowsAffected(res)
}

func (r *statsRepository) RecordLesson(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, recordStatsLesson, userID)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.RecordLesson").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return checkRowsAffected(res)
}

// RecordAnswer bumps the exercise counter and exactly one of the answer
// counters.
func (r *statsRepository) RecordAnswer(ctx context.Context, userID int64, correct bool) error {
	log := logger.FromContext(ctx)

	correctDelta, incorrectDelta := 0, 1
	if correct {
		correctDelta, incorrectDelta = 1, 0
	}

	res, err := r.db.ExecContext(ctx, recordStatsAnswer, correctDelta, incorrectDelta, userID)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.RecordAnswer").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return checkRowsAffected(res)
}
