package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

type languageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLanguageRepository constructs a [LanguageRepository] backed by the
// provided database connection and logger.
func NewLanguageRepository(db *DB, logger *logger.Logger) LanguageRepository {
	logger.Debug().Msg("creating language repository")
	return &languageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *languageRepository) FindByCode(ctx context.Context, code string) (models.Language, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findLanguageByCode, code)

	var found models.Language
	if err := row.Scan(&found.ID, &found.Code, &found.Name, &found.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Language{}, ErrNoLanguageWasFound
		}
		log.Err(err).Str("func", "*languageRepository.FindByCode").Msg("error: scanning error")
		return models.Language{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func (r *languageRepository) ListActive(ctx context.Context) ([]models.Language, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveLanguages)
	if err != nil {
		log.Err(err).Str("func", "*languageRepository.ListActive").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var languages []models.Language
	for rows.Next() {
		var l models.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.IsActive); err != nil {
			log.Err(err).Str("func", "*languageRepository.ListActive").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return languages, nil
}

// Save inserts the language or, if its code is already present, updates the
// name and active flag in place.
func (r *languageRepository) Save(ctx context.Context, language models.Language) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveLanguage, language.Code, language.Name, language.IsActive); err != nil {
		log.Err(err).Str("func", "*languageRepository.Save").Msg("error: upsert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
