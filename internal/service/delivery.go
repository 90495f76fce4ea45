package service

import (
	"context"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

// PasswordDelivery hands a freshly generated temporary password to the user
// after a reset. A desktop deployment has no outbound mail, so the default
// implementation records the event in the log and the TUI additionally shows
// the password on screen and copies it to the clipboard.
type PasswordDelivery interface {
	Deliver(ctx context.Context, user models.User, tempPassword string) error
}

type logDelivery struct {
	logger *logger.Logger
}

// NewLogDelivery returns a PasswordDelivery that only records the reset event.
// The temporary password itself is never written to the log.
func NewLogDelivery(logger *logger.Logger) PasswordDelivery {
	return &logDelivery{logger: logger}
}

func (d *logDelivery) Deliver(_ context.Context, user models.User, _ string) error {
	d.logger.Info().
		Str("username", user.Username).
		Str("email", user.Email).
		Msg("temporary password issued for account")
	return nil
}
