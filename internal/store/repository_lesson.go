package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

type lessonRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLessonRepository constructs a [LessonRepository] backed by the provided
// database connection and logger.
func NewLessonRepository(db *DB, logger *logger.Logger) LessonRepository {
	logger.Debug().Msg("creating lesson repository")
	return &lessonRepository{
		db:     db,
		logger: logger,
	}
}

func (r *lessonRepository) FindByID(ctx context.Context, id int64) (models.Lesson, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findLessonByID, id)

	var found models.Lesson
	err := row.Scan(&found.ID, &found.Title, &found.Description, &found.CategoryID, &found.LanguageID,
		&found.Difficulty, &found.XPReward, &found.OrderIndex, &found.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Lesson{}, ErrNoLessonWasFound
		}
		log.Err(err).Str("func", "*lessonRepository.FindByID").Msg("error: scanning error")
		return models.Lesson{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// List returns lessons matching filter, ordered by order_index. The WHERE
// clause is assembled dynamically; zero-valued filter fields add no
// conditions.
func (r *lessonRepository) List(ctx context.Context, filter LessonFilter) ([]models.Lesson, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.
		Select("id", "title", "description", "category_id", "language_id",
			"difficulty", "xp_reward", "order_index", "is_active").
		From("lessons").
		OrderBy("order_index")

	if filter.LanguageID != 0 {
		builder = builder.Where(squirrel.Eq{"language_id": filter.LanguageID})
	}
	if filter.CategoryID != 0 {
		builder = builder.Where(squirrel.Eq{"category_id": filter.CategoryID})
	}
	if filter.OnlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*lessonRepository.List").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*lessonRepository.List").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var l models.Lesson
		err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.CategoryID, &l.LanguageID,
			&l.Difficulty, &l.XPReward, &l.OrderIndex, &l.IsActive)
		if err != nil {
			log.Err(err).Str("func", "*lessonRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lessons, nil
}

func (r *lessonRepository) ListCategories(ctx context.Context, languageID int64) ([]models.LessonCategory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategoriesByLanguage, languageID)
	if err != nil {
		log.Err(err).Str("func", "*lessonRepository.ListCategories").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.LessonCategory
	for rows.Next() {
		var c models.LessonCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.LanguageID); err != nil {
			log.Err(err).Str("func", "*lessonRepository.ListCategories").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}
