package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

type progressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProgressRepository constructs a [ProgressRepository] backed by the
// provided database connection and logger.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

func (r *progressRepository) FindByUserAndLesson(ctx context.Context, userID, lessonID int64) (models.UserProgress, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findProgressByUserAndLesson, userID, lessonID)

	found, err := scanProgress(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProgress{}, ErrNoProgressWasFound
		}
		log.Err(err).Str("func", "*progressRepository.FindByUserAndLesson").Msg("error: scanning error")
		return models.UserProgress{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProgressByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListByUser").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.UserProgress
	for rows.Next() {
		p, err := scanProgress(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*progressRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Upsert inserts a fresh progress row or updates the existing one for the
// same user/lesson pair. The check-then-write is two statements without a
// transaction; the single sequential caller makes that acceptable here.
func (r *progressRepository) Upsert(ctx context.Context, progress models.UserProgress) error {
	log := logger.FromContext(ctx)

	_, err := r.FindByUserAndLesson(ctx, progress.UserID, progress.LessonID)
	switch {
	case errors.Is(err, ErrNoProgressWasFound):
		_, err = r.db.ExecContext(ctx, insertProgress,
			progress.UserID, progress.LessonID, progress.Completed, progress.CompletionDate, progress.Score)
	case err != nil:
		return err
	default:
		_, err = r.db.ExecContext(ctx, updateProgress,
			progress.Completed, progress.CompletionDate, progress.Score, progress.UserID, progress.LessonID)
	}

	if err != nil {
		log.Err(err).Str("func", "*progressRepository.Upsert").Msg("error: write failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func scanProgress(scan func(dest ...any) error) (models.UserProgress, error) {
	var p models.UserProgress
	var completionDate sql.NullTime

	err := scan(&p.ID, &p.UserID, &p.LessonID, &p.Completed, &completionDate, &p.Score)
	if err != nil {
		return models.UserProgress{}, err
	}

	if completionDate.Valid {
		p.CompletionDate = &completionDate.Time
	}

	return p, nil
}
