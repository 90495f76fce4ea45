package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lingualeap/lingualeap/internal/service"
	"github.com/lingualeap/lingualeap/models"
)

// NavigateTo switches the login-flow router to another page, optionally
// delivering a payload message to it.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult reports the outcome of an authentication attempt.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult reports the outcome of a registration attempt.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is delivered to the menu after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

// ResetResult reports the outcome of a password reset request.
type ResetResult struct {
	TempPassword string
	Err          error
}

type dashboardLoadedMsg struct {
	data service.DashboardData
	err  error
}

type languagesLoadedMsg struct {
	languages []models.Language
	defaultID int64
	err       error
}

type languageDeactivatedMsg struct {
	code string
	err  error
}

type lessonsLoadedMsg struct {
	lessons []models.Lesson
	err     error
}

type exercisesLoadedMsg struct {
	lesson    models.Lesson
	exercises []models.Exercise
	err       error
}

type answerGradedMsg struct {
	correct bool
	err     error
}

type lessonCompletedMsg struct {
	err error
}

type passwordChangedMsg struct {
	err error
}

type profileUpdatedMsg struct {
	user models.User
	err  error
}

type copiedMsg struct {
	err error
}
