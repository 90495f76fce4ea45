// Package tui implements the terminal user interface: the pre-login flow
// (menu, sign in, registration, password reset) and the authenticated main
// program (dashboard, lesson browser, exercise runner, profile screens).
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/service"
	"github.com/lingualeap/lingualeap/models"
)

// ErrUserQuit is returned when the user closes the application from the
// login flow instead of signing in.
var ErrUserQuit = errors.New("user quit")

// TUI owns the two Bubble Tea programs of the application lifecycle.
type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// LoginFlow runs the pre-login program and blocks until the user either
// authenticates or quits. On success it returns the authenticated user.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.Account),
		"register": NewRegisterModel(ctx, t.services.Account),
		"reset":    NewResetModel(ctx, t.services.Account),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if !result.loggedIn {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the authenticated program for user and blocks until quit or
// logout. It reports logout=true when the user chose to log out rather than
// exit, so the caller can restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
