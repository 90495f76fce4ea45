package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lingualeap/lingualeap/internal/service"
	"github.com/lingualeap/lingualeap/models"
)

type screen int

const (
	screenDashboard screen = iota
	screenLanguages
	screenLessons
	screenExercises
	screenProfile
	screenPassword
)

// mainLoopModel drives the authenticated part of the application: the
// dashboard, the lesson browser, the exercise runner, and the profile
// screens. It exits either on quit or on logout; the client restarts the
// login flow in the latter case.
type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	user     models.User

	screen  screen
	loading bool
	status  string
	errMsg  string

	dashboard service.DashboardData

	languages      []models.Language
	langIdx        int
	activeLanguage models.Language

	lessons   []models.Lesson
	lessonIdx int

	runner exerciseRunner
	forms  profileForms

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, user models.User) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		loading:  true,
		forms:    newProfileForms(user),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadDashboard()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.dashboard = msg.data
		return m, nil

	case languagesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.languages = msg.languages
		if m.langIdx >= len(m.languages) {
			m.langIdx = 0
		}
		if m.activeLanguage.ID == 0 && msg.defaultID != 0 {
			for i, lang := range m.languages {
				if lang.ID == msg.defaultID {
					m.langIdx = i
					break
				}
			}
		}
		return m, nil

	case languageDeactivatedMsg:
		if msg.err != nil {
			m.loading = false
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Language %s deactivated", msg.code)
		return m, m.cmdLoadLanguages()

	case lessonsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.lessons = msg.lessons
		if m.lessonIdx >= len(m.lessons) {
			m.lessonIdx = 0
		}
		return m, nil

	case exercisesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.screen = screenLessons
			return m, nil
		}
		if len(msg.exercises) == 0 {
			m.errMsg = "This lesson has no exercises yet"
			m.screen = screenLessons
			return m, nil
		}
		m.errMsg = ""
		m.runner = newExerciseRunner(msg.lesson, msg.exercises)
		m.screen = screenExercises
		return m, m.runner.initCmd()

	case answerGradedMsg:
		m.runner.applyGrade(msg)
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case lessonCompletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		// Completing a lesson is activity; keep the session window open.
		m.services.Session.Refresh()
		m.status = fmt.Sprintf("Lesson %q completed with score %d", m.runner.lesson.Title, m.runner.score())
		m.errMsg = ""
		m.screen = screenDashboard
		m.loading = true
		return m, m.cmdLoadDashboard()

	case passwordChangedMsg:
		m.forms.passwordSubmitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Password changed"
		m.forms.resetPasswordForm()
		m.screen = screenDashboard
		return m, nil

	case profileUpdatedMsg:
		m.forms.profileSubmitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.user = msg.user
		m.services.Session.Login(m.user)
		m.status = "Profile updated"
		m.forms = newProfileForms(m.user)
		m.screen = screenDashboard
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m.forwardToActiveInput(msg)
}

// handleKey routes key events: global hotkeys first on the non-form screens,
// then the per-screen handlers.
func (m mainLoopModel) handleKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	formScreen := m.screen == screenExercises || m.screen == screenProfile || m.screen == screenPassword

	if !formScreen {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.dashboard):
			m.screen = screenDashboard
			m.status = ""
			m.loading = true
			return m, m.cmdLoadDashboard()
		case key.Matches(keyMsg, keys.browse):
			m.screen = screenLanguages
			m.status = ""
			m.loading = true
			return m, m.cmdLoadLanguages()
		case key.Matches(keyMsg, keys.profile):
			m.screen = screenProfile
			m.status = ""
			m.forms = newProfileForms(m.user)
			return m, nil
		case key.Matches(keyMsg, keys.password):
			m.screen = screenPassword
			m.status = ""
			m.forms.resetPasswordForm()
			return m, nil
		}
	} else if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLanguages:
		return m.updateLanguages(keyMsg)
	case screenLessons:
		return m.updateLessons(keyMsg)
	case screenExercises:
		return m.updateExercises(keyMsg)
	case screenProfile:
		return m.updateProfile(keyMsg)
	case screenPassword:
		return m.updatePassword(keyMsg)
	}

	return m, nil
}

func (m mainLoopModel) updateLanguages(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.langIdx > 0 {
			m.langIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.langIdx < len(m.languages)-1 {
			m.langIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.languages) == 0 {
			return m, nil
		}
		m.activeLanguage = m.languages[m.langIdx]
		m.screen = screenLessons
		m.loading = true
		return m, m.cmdLoadLessons(m.activeLanguage.ID)
	case key.Matches(keyMsg, keys.deactivate):
		if m.user.IsAdmin && len(m.languages) > 0 {
			m.loading = true
			return m, m.cmdDeactivateLanguage(m.languages[m.langIdx])
		}
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenDashboard
		m.loading = true
		return m, m.cmdLoadDashboard()
	}
	return m, nil
}

func (m mainLoopModel) updateLessons(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.lessonIdx > 0 {
			m.lessonIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.lessonIdx < len(m.lessons)-1 {
			m.lessonIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.lessons) == 0 {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadExercises(m.lessons[m.lessonIdx])
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenLanguages
		return m, nil
	}
	return m, nil
}

// forwardToActiveInput hands non-key messages (cursor blinks mostly) to
// whichever text input is live on the current screen.
func (m mainLoopModel) forwardToActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenExercises:
		m.runner.answer, cmd = m.runner.answer.Update(msg)
	case screenProfile:
		m.forms.profileInputs[m.forms.profileFocus], cmd = m.forms.profileInputs[m.forms.profileFocus].Update(msg)
	case screenPassword:
		m.forms.passwordInputs[m.forms.passwordFocus], cmd = m.forms.passwordInputs[m.forms.passwordFocus].Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenLanguages:
		return m.viewLanguages()
	case screenLessons:
		return m.viewLessons()
	case screenExercises:
		return m.viewExercises()
	case screenProfile:
		return m.viewProfile()
	case screenPassword:
		return m.viewPassword()
	default:
		return m.viewDashboard()
	}
}

func (m mainLoopModel) viewDashboard() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		title := "Welcome back, " + m.user.Username
		if m.user.IsAdmin {
			title += " (admin)"
		}
		b.WriteString(title)
		b.WriteString("\n\n")

		stats := m.dashboard.Stats
		streak := m.dashboard.Streak
		b.WriteString(fmt.Sprintf("Total XP            %d\n", stats.TotalXP))
		b.WriteString(fmt.Sprintf("Lessons completed   %d\n", stats.LessonsCompleted))
		b.WriteString(fmt.Sprintf("Exercises answered  %d\n", stats.ExercisesCompleted))
		if answered := stats.CorrectAnswers + stats.IncorrectAnswers; answered > 0 {
			b.WriteString(fmt.Sprintf("Accuracy            %d%%\n", stats.CorrectAnswers*100/answered))
		}
		b.WriteString(fmt.Sprintf("Current streak      %d day(s)\n", streak.CurrentStreak))
		b.WriteString(fmt.Sprintf("Best streak         %d day(s)\n", streak.MaxStreak))
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"b: browse lessons │ p: profile │ w: change password │ l: log out │ q: quit")
}

func (m mainLoopModel) viewLanguages() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.languages) == 0 {
		b.WriteString("No languages available\n")
	} else {
		for i, lang := range m.languages {
			cursor := "  "
			if i == m.langIdx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s (%s)\n", cursor, lang.Name, lang.Code))
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	hotkeys := "enter: select │ ↑/↓: move │ esc: dashboard"
	if m.user.IsAdmin {
		hotkeys += " │ x: deactivate"
	}
	return renderPage("CHOOSE A LANGUAGE", strings.TrimRight(b.String(), "\n"), hotkeys)
}

func (m mainLoopModel) viewLessons() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.lessons) == 0 {
		b.WriteString("No lessons for this language yet\n")
	} else {
		completed := make(map[int64]bool, len(m.dashboard.Progress))
		for _, p := range m.dashboard.Progress {
			if p.Completed {
				completed[p.LessonID] = true
			}
		}

		for i, lesson := range m.lessons {
			cursor := "  "
			if i == m.lessonIdx {
				cursor = "> "
			}
			mark := " "
			if completed[lesson.ID] {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("%s%s %s (difficulty %d, %d XP)\n",
				cursor, mark, fitText(lesson.Title, 40), lesson.Difficulty, lesson.XPReward))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	title := "LESSONS"
	if m.activeLanguage.Name != "" {
		title = "LESSONS — " + strings.ToUpper(m.activeLanguage.Name)
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: start │ ↑/↓: move │ esc: languages")
}

func (m mainLoopModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	progress := m.services.Progress
	userID := m.user.ID

	return func() tea.Msg {
		data, err := progress.Dashboard(ctx, userID)
		return dashboardLoadedMsg{data: data, err: err}
	}
}

func (m mainLoopModel) cmdLoadLanguages() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		languages, err := catalog.Languages(ctx)
		if err != nil {
			return languagesLoadedMsg{err: err}
		}

		// Preselection is best effort; an empty catalog is not an error
		// here, the list view reports it.
		var defaultID int64
		if def, err := catalog.DefaultLanguage(ctx); err == nil {
			defaultID = def.ID
		}
		return languagesLoadedMsg{languages: languages, defaultID: defaultID}
	}
}

func (m mainLoopModel) cmdDeactivateLanguage(language models.Language) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		err := catalog.DeactivateLanguage(ctx, language)
		return languageDeactivatedMsg{code: language.Code, err: err}
	}
}

func (m mainLoopModel) cmdLoadLessons(languageID int64) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		lessons, err := catalog.Lessons(ctx, languageID, 0)
		return lessonsLoadedMsg{lessons: lessons, err: err}
	}
}

func (m mainLoopModel) cmdLoadExercises(lesson models.Lesson) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		exercises, err := catalog.Exercises(ctx, lesson.ID)
		return exercisesLoadedMsg{lesson: lesson, exercises: exercises, err: err}
	}
}
