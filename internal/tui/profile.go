package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lingualeap/lingualeap/models"
)

// profileForms bundles the state of the two account maintenance screens:
// the profile editor and the password change form.
type profileForms struct {
	profileInputs     []textinput.Model
	profileFocus      int
	profileSubmitting bool

	passwordInputs     []textinput.Model
	passwordFocus      int
	passwordSubmitting bool
}

func newProfileForms(user models.User) profileForms {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 30
	username.Width = 40
	username.SetValue(user.Username)
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100
	email.Width = 40
	email.SetValue(user.Email)

	current := textinput.New()
	current.Placeholder = "current password"
	current.EchoMode = textinput.EchoPassword
	current.EchoCharacter = '*'
	current.Width = 40

	newPass := textinput.New()
	newPass.Placeholder = "new password"
	newPass.EchoMode = textinput.EchoPassword
	newPass.EchoCharacter = '*'
	newPass.Width = 40

	repeat := textinput.New()
	repeat.Placeholder = "repeat new password"
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'
	repeat.Width = 40

	return profileForms{
		profileInputs:  []textinput.Model{username, email},
		passwordInputs: []textinput.Model{current, newPass, repeat},
	}
}

func (f *profileForms) resetPasswordForm() {
	for i := range f.passwordInputs {
		f.passwordInputs[i].SetValue("")
		f.passwordInputs[i].Blur()
	}
	f.passwordFocus = 0
	f.passwordInputs[0].Focus()
	f.passwordSubmitting = false
}

func (f *profileForms) focusProfile(delta int) {
	f.profileInputs[f.profileFocus].Blur()
	f.profileFocus = (f.profileFocus + delta + len(f.profileInputs)) % len(f.profileInputs)
	f.profileInputs[f.profileFocus].Focus()
}

func (f *profileForms) focusPassword(delta int) {
	f.passwordInputs[f.passwordFocus].Blur()
	f.passwordFocus = (f.passwordFocus + delta + len(f.passwordInputs)) % len(f.passwordInputs)
	f.passwordInputs[f.passwordFocus].Focus()
}

func (m mainLoopModel) updateProfile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenDashboard
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.forms.focusProfile(1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.forms.focusProfile(-1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.forms.profileSubmitting {
			return m, nil
		}

		username := strings.TrimSpace(m.forms.profileInputs[0].Value())
		email := strings.TrimSpace(m.forms.profileInputs[1].Value())
		if username == "" && email == "" {
			m.errMsg = "Nothing to update"
			return m, nil
		}

		m.errMsg = ""
		m.forms.profileSubmitting = true
		return m, m.cmdUpdateProfile(username, email)
	}

	var cmd tea.Cmd
	m.forms.profileInputs[m.forms.profileFocus], cmd = m.forms.profileInputs[m.forms.profileFocus].Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder
	b.WriteString("Username │ [")
	b.WriteString(m.forms.profileInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.forms.profileInputs[1].View())
	b.WriteString("]\n")

	if m.forms.profileSubmitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) updatePassword(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenDashboard
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.forms.focusPassword(1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.forms.focusPassword(-1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.forms.passwordSubmitting {
			return m, nil
		}

		current := m.forms.passwordInputs[0].Value()
		newPass := m.forms.passwordInputs[1].Value()
		repeat := m.forms.passwordInputs[2].Value()

		if current == "" || newPass == "" || repeat == "" {
			m.errMsg = "All fields are required"
			return m, nil
		}
		if newPass != repeat {
			m.errMsg = "New passwords do not match"
			return m, nil
		}

		m.errMsg = ""
		m.forms.passwordSubmitting = true
		return m, m.cmdChangePassword(current, newPass)
	}

	var cmd tea.Cmd
	m.forms.passwordInputs[m.forms.passwordFocus], cmd = m.forms.passwordInputs[m.forms.passwordFocus].Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) viewPassword() string {
	var b strings.Builder
	b.WriteString("Current password │ [")
	b.WriteString(m.forms.passwordInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("New password     │ [")
	b.WriteString(m.forms.passwordInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.forms.passwordInputs[2].View())
	b.WriteString("]\n")

	if m.forms.passwordSubmitting {
		b.WriteString("\n[Changing...]\n")
	} else {
		b.WriteString("\n[Change password]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CHANGE PASSWORD", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit")
}

func (m mainLoopModel) cmdUpdateProfile(username, email string) tea.Cmd {
	ctx := m.ctx
	account := m.services.Account
	userID := m.user.ID

	return func() tea.Msg {
		user, err := account.UpdateProfile(ctx, userID, username, email)
		return profileUpdatedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdChangePassword(current, newPass string) tea.Cmd {
	ctx := m.ctx
	account := m.services.Account
	userID := m.user.ID

	return func() tea.Msg {
		return passwordChangedMsg{err: account.ChangePassword(ctx, userID, current, newPass)}
	}
}
