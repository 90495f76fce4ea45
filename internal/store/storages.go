package store

import (
	"context"
	"fmt"

	"github.com/lingualeap/lingualeap/internal/config"
	"github.com/lingualeap/lingualeap/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	UserRepository     UserRepository
	LanguageRepository LanguageRepository
	LessonRepository   LessonRepository
	ExerciseRepository ExerciseRepository
	ProgressRepository ProgressRepository
	StatsRepository    StatsRepository
	StreakRepository   StreakRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		LanguageRepository: NewLanguageRepository(db, logger),
		LessonRepository:   NewLessonRepository(db, logger),
		ExerciseRepository: NewExerciseRepository(db, logger),
		ProgressRepository: NewProgressRepository(db, logger),
		StatsRepository:    NewStatsRepository(db, logger),
		StreakRepository:   NewStreakRepository(db, logger),
	}, nil
}
