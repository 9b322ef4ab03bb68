package tui

import (
	"github.com/lbertolazzi/go-taxonomy-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the RootModel to another page. An optional Payload is
// redelivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an authentication attempt. A nil Err with a
// configurator still pending first login makes the router open the
// registration page instead of ending the flow.
type LoginResult struct {
	Err          error
	Configurator *models.Configurator
}

// BeginRegistration is delivered to the registration page when a first-launch
// login with the default credentials succeeds.
type BeginRegistration struct {
	Configurator *models.Configurator
}

// RegisterResult finishes the first-login registration. On success the
// configurator is registered and logged in.
type RegisterResult struct {
	Err          error
	Configurator *models.Configurator
}

type saveDoneMsg struct {
	err error
}
