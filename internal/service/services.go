// Package service contains the application's business logic: account
// lifecycle, the in-process session, the learning content catalog, and
// progress tracking. Services depend on the repository interfaces in the
// store package and are consumed by the terminal client.
package service

import (
	"fmt"

	"github.com/lingualeap/lingualeap/internal/config"
	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/store"
	"github.com/lingualeap/lingualeap/internal/utils"
)

// Services groups all application services into a single value passed to the
// client layer.
type Services struct {
	Account  AccountService
	Session  *SessionManager
	Catalog  CatalogService
	Progress ProgressService
}

// NewServices wires the full service layer from configuration and storage.
// delivery may be nil to use log-only password delivery.
func NewServices(
	storages *store.Storages,
	cfg *config.Config,
	delivery PasswordDelivery,
	logger *logger.Logger,
) (*Services, error) {
	logger.Info().Msg("creating new services...")

	hasher, err := utils.NewPasswordHasher(cfg.Security.HashAlgorithm, cfg.Security.SaltLength)
	if err != nil {
		return nil, fmt.Errorf("hasher initialisation failed: %w", err)
	}

	return &Services{
		Account:  NewAccountService(storages, hasher, delivery, cfg.Security, logger),
		Session:  NewSessionManager(cfg.Security, logger),
		Catalog:  NewCatalogService(storages, cfg.App.DefaultLanguage, logger),
		Progress: NewProgressService(storages, cfg.Security, logger),
	}, nil
}
