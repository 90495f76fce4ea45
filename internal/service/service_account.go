package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lingualeap/lingualeap/internal/config"
	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/store"
	"github.com/lingualeap/lingualeap/internal/utils"
	"github.com/lingualeap/lingualeap/models"
)

// accountService implements AccountService on top of the user repository and
// the password hasher.
type accountService struct {
	users    store.UserRepository
	stats    store.StatsRepository
	streaks  store.StreakRepository
	hasher   *utils.PasswordHasher
	delivery PasswordDelivery

	tempPasswordLength int

	now    func() time.Time
	logger *logger.Logger
}

// NewAccountService wires an AccountService from its collaborators.
// delivery may be nil, in which case reset notifications go to the log only.
func NewAccountService(
	storages *store.Storages,
	hasher *utils.PasswordHasher,
	delivery PasswordDelivery,
	cfg config.Security,
	logger *logger.Logger,
) AccountService {
	if delivery == nil {
		delivery = NewLogDelivery(logger)
	}

	return &accountService{
		users:              storages.UserRepository,
		stats:              storages.StatsRepository,
		streaks:            storages.StreakRepository,
		hasher:             hasher,
		delivery:           delivery,
		tempPasswordLength: cfg.TempPasswordLength,
		now:                time.Now,
		logger:             logger,
	}
}

// Register checks, in order: username free, email free, password strong.
// The first failed check wins so the user sees one actionable message.
func (s *accountService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	if _, err := s.users.FindUserByUsername(ctx, username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}

	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("email lookup failed: %w", err)
	}

	if !utils.IsPasswordStrong(password) {
		return models.User{}, ErrWeakPassword
	}

	hash, salt, err := s.hasher.HashWithNewSalt(password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:         username,
		Email:            email,
		PasswordHash:     hash,
		Salt:             salt,
		RegistrationDate: s.now(),
		IsAdmin:          false,
		IsActive:         true,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		// The uniqueness checks above race with concurrent writers; the
		// constraint violation from the insert is mapped to the same
		// user-facing errors.
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.User{}, ErrUsernameTaken
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("account creation failed: %w", err)
	}

	// Counter rows are best effort. The account is usable without them and
	// the repositories recreate nothing, so a failure here is logged and
	// the registration still succeeds.
	if err := s.stats.InitForUser(ctx, created.ID); err != nil {
		s.logger.Error().Err(err).Int64("user_id", created.ID).Msg("failed to initialise user stats")
	}
	if err := s.streaks.InitForUser(ctx, created.ID); err != nil {
		s.logger.Error().Err(err).Int64("user_id", created.ID).Msg("failed to initialise user streak")
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("account registered")

	return created, nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown username and
// a wrong password. The inactive check runs before password verification, so
// a deactivated account is reported as such even with valid credentials.
func (s *accountService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrAccountDisabled
	}

	if !s.hasher.Verify(password, user.PasswordHash, user.Salt) {
		return models.User{}, ErrInvalidCredentials
	}

	loginTime := s.now()
	user.LastLogin = &loginTime
	if err := s.users.UpdateLastLogin(ctx, user); err != nil {
		// Authentication already succeeded; a stale last_login is not
		// worth failing the login over.
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to update last login")
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user authenticated")

	return user, nil
}

func (s *accountService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash, user.Salt) {
		return ErrInvalidCurrentPassword
	}

	if !utils.IsPasswordStrong(newPassword) {
		return ErrWeakPassword
	}

	hash, salt, err := s.hasher.HashWithNewSalt(newPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash, salt); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Msg("password changed")

	return nil
}

func (s *accountService) ResetPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrEmailNotFound
		}
		return "", fmt.Errorf("email lookup failed: %w", err)
	}

	tempPassword, err := utils.GenerateTempPassword(s.tempPasswordLength)
	if err != nil {
		return "", fmt.Errorf("temporary password generation failed: %w", err)
	}

	hash, salt, err := s.hasher.HashWithNewSalt(tempPassword)
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash, salt); err != nil {
		return "", fmt.Errorf("password update failed: %w", err)
	}

	if err := s.delivery.Deliver(ctx, user, tempPassword); err != nil {
		// The hash is already replaced, so the reset stands; the caller
		// still receives the temporary password directly.
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("temporary password delivery failed")
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("password reset issued")

	return tempPassword, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID int64, username, email string) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrAccountNotFound
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if username != "" && username != user.Username {
		if _, err := s.users.FindUserByUsername(ctx, username); err == nil {
			return models.User{}, ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("username lookup failed: %w", err)
		}
		user.Username = username
	}

	if email != "" && email != user.Email {
		if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
			return models.User{}, ErrEmailTaken
		} else if !errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("email lookup failed: %w", err)
		}
		user.Email = email
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.User{}, ErrUsernameTaken
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("profile updated")

	return user, nil
}
