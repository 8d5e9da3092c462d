package tui

import (
	"strings"

	"github.com/palmcar/rentaldesk/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *mainLoopModel) startAccountForm() {
	name := textinput.New()
	name.Placeholder = "name"
	name.Width = 40
	name.SetValue(m.session.Name)
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Width = 40
	email.SetValue(m.session.Email)

	m.accountInputs = []textinput.Model{name, email}
	m.accountFocus = 0
	m.accountSaving = false
	m.errMsg = ""
	m.mode = modeAccount
}

func (m mainLoopModel) updateAccountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeCatalog
			m.errMsg = ""
			return m, nil
		case "tab", "shift+tab":
			m.accountInputs[m.accountFocus].Blur()
			m.accountFocus = (m.accountFocus + 1) % len(m.accountInputs)
			m.accountInputs[m.accountFocus].Focus()
			return m, nil
		case "enter":
			if m.accountSaving {
				return m, nil
			}

			name := strings.TrimSpace(m.accountInputs[0].Value())
			email := strings.TrimSpace(m.accountInputs[1].Value())
			if name == "" || email == "" {
				m.errMsg = "name and email are required"
				return m, nil
			}

			m.errMsg = ""
			m.accountSaving = true
			return m, m.cmdSaveAccount(name, email)
		}
	}

	var cmd tea.Cmd
	m.accountInputs[m.accountFocus], cmd = m.accountInputs[m.accountFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewAccountForm() string {
	var b strings.Builder
	b.WriteString("Name   │ [" + m.accountInputs[0].View() + "]\n")
	b.WriteString("Email  │ [" + m.accountInputs[1].View() + "]\n")

	if m.accountSaving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) cmdSaveAccount(name, email string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuthService
	userID := m.session.UserID

	return func() tea.Msg {
		user, err := svc.UpdateAccount(ctx, userID, models.AccountPatch{
			Name:  &name,
			Email: &email,
		})
		return accountSavedMsg{user: user, err: err}
	}
}
