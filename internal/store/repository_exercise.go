package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

type exerciseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExerciseRepository constructs an [ExerciseRepository] backed by the
// provided database connection and logger.
func NewExerciseRepository(db *DB, logger *logger.Logger) ExerciseRepository {
	logger.Debug().Msg("creating exercise repository")
	return &exerciseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *exerciseRepository) FindByID(ctx context.Context, id int64) (models.Exercise, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findExerciseByID, id)

	found, err := scanExercise(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Exercise{}, ErrNoExerciseWasFound
		}
		log.Err(err).Str("func", "*exerciseRepository.FindByID").Msg("error: scanning error")
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func (r *exerciseRepository) ListByLesson(ctx context.Context, lessonID int64) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listExercisesByLesson, lessonID)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.ListByLesson").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*exerciseRepository.ListByLesson").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return exercises, nil
}

// scanExercise reads one exercises row. The optional text columns are stored
// as NULLs, so they go through sql.NullString.
func scanExercise(scan func(dest ...any) error) (models.Exercise, error) {
	var e models.Exercise
	var options, hint, imagePath, audioPath sql.NullString

	err := scan(&e.ID, &e.LessonID, &e.Type, &e.Content, &e.CorrectAnswer,
		&options, &hint, &imagePath, &audioPath, &e.XPReward, &e.OrderIndex)
	if err != nil {
		return models.Exercise{}, err
	}

	e.Options = options.String
	e.Hint = hint.String
	e.ImagePath = imagePath.String
	e.AudioPath = audioPath.String

	return e, nil
}
