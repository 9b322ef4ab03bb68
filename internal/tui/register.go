package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/service"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// RegisterModel is the Bubble Tea model for the first-login registration
// screen. It renders three text inputs (new username, password, password
// confirmation) and dispatches an async registration command on submission.
// A duplicate username keeps the form open for another attempt; on success a
// [RegisterResult] is produced and handled by [RootModel] to finish the
// authentication flow.
type RegisterModel struct {
	ctx  context.Context
	auth *service.AuthService
	save SaveFunc

	pending *models.Configurator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with three pre-configured text
// inputs. The username field receives focus immediately; the password fields
// use masked echo.
func NewRegisterModel(ctx context.Context, auth *service.AuthService, save SaveFunc) *RegisterModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "new username"
	fields[0].CharLimit = 40
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "new password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "repeat password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		save:   save,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [BeginRegistration] — stores the pending configurator this form acts on.
//   - [RegisterResult]    — clears submitting state; on error, populates
//     errMsg and keeps the form open for another attempt.
//   - tab                 — moves focus to the next input.
//   - shift+tab           — moves focus to the previous input.
//   - enter               — validates inputs (all required; passwords must
//     match) and dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BeginRegistration:
		m.pending = msg.Configurator
		m.errMsg = ""
		m.resetForm()
		return m, textinput.Blink
	case RegisterResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
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
			if m.submitting || m.pending == nil {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			repeat := m.inputs[2].Value()

			if username == "" || pass == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a two-column
// table with the three input fields, a submission indicator, and an optional
// error message.
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Choose your personal credentials. They replace the default\n")
	b.WriteString("ones and will be required on every future sign in.\n\n")

	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("New username     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("New password     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("FIRST LOGIN — CHOOSE CREDENTIALS", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	save := m.save
	pending := m.pending

	return func() tea.Msg {
		if err := auth.CompleteRegistration(pending, username, pass); err != nil {
			return RegisterResult{Err: err}
		}
		// Persist the completed registration; a failure is logged by the
		// store and must not undo the login.
		_ = save(ctx)
		return RegisterResult{Configurator: pending}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
