package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lingualeap/lingualeap/internal/service"
)

// ResetModel is the Bubble Tea model for the password reset screen. The user
// enters the account email; on success the issued temporary password is shown
// on screen and can be copied to the clipboard.
type ResetModel struct {
	ctx     context.Context
	account service.AccountService

	email        textinput.Model
	submitting   bool
	tempPassword string
	status       string
	errMsg       string
}

func NewResetModel(ctx context.Context, account service.AccountService) *ResetModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	return &ResetModel{
		ctx:     ctx,
		account: account,
		email:   emailInput,
	}
}

func (m *ResetModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResetResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.tempPassword = msg.TempPassword
		m.status = "Temporary password issued, use it to sign in and then change it"
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
		} else {
			m.status = "Temporary password copied to clipboard"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.copy):
			// Before a temporary password exists, "c" is just typing.
			if m.tempPassword != "" {
				return m, m.cmdCopy()
			}
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.email.Value())
			if email == "" {
				m.errMsg = "Email is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdReset(email)
		}
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m *ResetModel) View() string {
	var b strings.Builder
	b.WriteString("Email │ [")
	b.WriteString(m.email.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Resetting...]\n")
	} else {
		b.WriteString("\n[Reset password]\n")
	}

	if m.tempPassword != "" {
		b.WriteString("\nTemporary password: ")
		b.WriteString(m.tempPassword)
		b.WriteString("\n")
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

	hotkeys := "esc: back │ enter: submit"
	if m.tempPassword != "" {
		hotkeys = "esc: back │ c: copy password │ enter: submit"
	}
	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), hotkeys)
}

func (m *ResetModel) cmdReset(email string) tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		temp, err := account.ResetPassword(ctx, email)
		return ResetResult{TempPassword: temp, Err: err}
	}
}

func (m *ResetModel) cmdCopy() tea.Cmd {
	temp := m.tempPassword
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(temp)}
	}
}

func (m *ResetModel) reset() {
	m.submitting = false
	m.tempPassword = ""
	m.status = ""
	m.errMsg = ""
	m.email.SetValue("")
}
