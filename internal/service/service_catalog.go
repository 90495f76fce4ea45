package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/store"
	"github.com/lingualeap/lingualeap/models"
)

type catalogService struct {
	languages   store.LanguageRepository
	lessons     store.LessonRepository
	exercises   store.ExerciseRepository
	defaultCode string
	logger      *logger.Logger
}

// NewCatalogService wires a CatalogService over the content repositories.
// defaultCode is the ISO code of the language preselected in the browser.
func NewCatalogService(storages *store.Storages, defaultCode string, logger *logger.Logger) CatalogService {
	return &catalogService{
		languages:   storages.LanguageRepository,
		lessons:     storages.LessonRepository,
		exercises:   storages.ExerciseRepository,
		defaultCode: defaultCode,
		logger:      logger,
	}
}

func (s *catalogService) Languages(ctx context.Context) ([]models.Language, error) {
	languages, err := s.languages.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("language listing failed: %w", err)
	}
	return languages, nil
}

func (s *catalogService) Categories(ctx context.Context, languageID int64) ([]models.LessonCategory, error) {
	categories, err := s.lessons.ListCategories(ctx, languageID)
	if err != nil {
		return nil, fmt.Errorf("category listing failed: %w", err)
	}
	return categories, nil
}

// Lessons lists active lessons, optionally narrowed by language and category.
// Zero ids mean no filter on that dimension.
func (s *catalogService) Lessons(ctx context.Context, languageID, categoryID int64) ([]models.Lesson, error) {
	lessons, err := s.lessons.List(ctx, store.LessonFilter{
		LanguageID: languageID,
		CategoryID: categoryID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("lesson listing failed: %w", err)
	}
	return lessons, nil
}

func (s *catalogService) Lesson(ctx context.Context, id int64) (models.Lesson, error) {
	lesson, err := s.lessons.FindByID(ctx, id)
	if err != nil {
		return models.Lesson{}, fmt.Errorf("lesson lookup failed: %w", err)
	}
	return lesson, nil
}

func (s *catalogService) Exercises(ctx context.Context, lessonID int64) ([]models.Exercise, error) {
	exercises, err := s.exercises.ListByLesson(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("exercise listing failed: %w", err)
	}
	return exercises, nil
}

func (s *catalogService) DefaultLanguage(ctx context.Context) (models.Language, error) {
	if s.defaultCode != "" {
		language, err := s.languages.FindByCode(ctx, s.defaultCode)
		switch {
		case err == nil && language.IsActive:
			return language, nil
		case err != nil && !errors.Is(err, store.ErrNoLanguageWasFound):
			return models.Language{}, fmt.Errorf("default language lookup failed: %w", err)
		}
		// Configured code missing or deactivated; fall through.
	}

	languages, err := s.languages.ListActive(ctx)
	if err != nil {
		return models.Language{}, fmt.Errorf("language listing failed: %w", err)
	}
	if len(languages) == 0 {
		return models.Language{}, ErrNoLanguages
	}
	return languages[0], nil
}

func (s *catalogService) DeactivateLanguage(ctx context.Context, language models.Language) error {
	language.IsActive = false
	if err := s.languages.Save(ctx, language); err != nil {
		return fmt.Errorf("language update failed: %w", err)
	}

	s.logger.Info().Str("code", language.Code).Msg("language deactivated")
	return nil
}
