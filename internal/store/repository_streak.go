package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

type streakRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStreakRepository constructs a [StreakRepository] backed by the provided
// database connection and logger.
func NewStreakRepository(db *DB, logger *logger.Logger) StreakRepository {
	logger.Debug().Msg("creating streak repository")
	return &streakRepository{
		db:     db,
		logger: logger,
	}
}

// InitForUser creates the zeroed streak row for a freshly registered
// account. Called once per user right after account creation.
func (r *streakRepository) InitForUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, initUserStreak, userID); err != nil {
		log.Err(err).Str("func", "*streakRepository.InitForUser").Msg("error: insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *streakRepository) FindByUser(ctx context.Context, userID int64) (models.UserStreak, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findStreakByUser, userID)

	var found models.UserStreak
	var lastActivity sql.NullTime
	err := row.Scan(&found.UserID, &found.CurrentStreak, &found.MaxStreak, &lastActivity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserStreak{}, ErrNoStreakWasFound
		}
		log.Err(err).Str("func", "*streakRepository.FindByUser").Msg("error: scanning error")
		return models.UserStreak{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if lastActivity.Valid {
		found.LastActivityDate = &lastActivity.Time
	}

	return found, nil
}

func (r *streakRepository) Save(ctx context.Context, streak models.UserStreak) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, saveStreak,
		streak.CurrentStreak, streak.MaxStreak, streak.LastActivityDate, streak.UserID)
	if err != nil {
		log.Err(err).Str("func", "*streakRepository.Save").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return checkRowsAffected(res)
}
