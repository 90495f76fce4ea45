package client

import (
	"context"
	"errors"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/service"
	"github.com/lingualeap/lingualeap/internal/tui"
)

// App ties the service layer and the terminal UI into the application
// lifecycle.
type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, logger *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: logger}
}

// Run drives the session loop: login flow, main program, and on logout back
// to the login flow. It returns nil when the user quits the application.
func (a *App) Run() error {
	ctx := a.logger.ToContext(context.Background())

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.services.Session.Login(user)

		logout, err := a.tui.MainLoop(ctx, user)
		a.services.Session.Logout()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}
