// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/service"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text
// inputs (username and password) and dispatches an async login command on form
// submission. On success a [LoginResult] message is produced; when the
// configurator is still pending first login the model navigates to the
// registration page instead, and [RootModel] ends the flow otherwise.
type LoginModel struct {
	ctx  context.Context
	auth *service.AuthService
	save SaveFunc

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and
// password inputs. The username field receives focus immediately; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, auth *service.AuthService, save SaveFunc) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 40
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		save:   save,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult] — clears submitting state; on error, populates errMsg;
//     a configurator pending first login is sent on to the registration page.
//   - tab            — moves focus to the next input.
//   - shift+tab      — moves focus to the previous input.
//   - enter          — validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		if result.Configurator.FirstLogin() {
			m.errMsg = ""
			return m, func() tea.Msg {
				return NavigateTo{
					Page:    "register",
					Payload: BeginRegistration{Configurator: result.Configurator},
				}
			}
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if username == "" || pass == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form as a two-column table
// with username and password inputs, a submission indicator, and an optional
// error message. On the very first launch a hint about the default
// credentials is shown above the form.
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.auth.IsFirstEverLaunch() {
		b.WriteString("First launch: sign in with ")
		b.WriteString(models.DefaultUsername)
		b.WriteString(" / ")
		b.WriteString(models.DefaultPassword)
		b.WriteString(" to set up your account.\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ ctrl+v: about")
}

func (m *LoginModel) cmdLogin(username, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	save := m.save

	return func() tea.Msg {
		if auth.IsFirstEverLaunch() {
			if !auth.IsDefaultCredentials(username, pass) {
				return LoginResult{Err: service.ErrAuthenticationFailed}
			}
			pending, err := auth.CreatePendingConfigurator()
			if err != nil {
				return LoginResult{Err: err}
			}
			// A save failure here is not fatal: the pending configurator is
			// recreated on the next first launch.
			_ = save(ctx)
			return LoginResult{Configurator: pending}
		}

		configurator, err := auth.Authenticate(username, pass)
		return LoginResult{Err: err, Configurator: configurator}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
