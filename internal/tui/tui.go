package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/service"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// ErrUserQuit is returned when the configurator leaves the program instead of
// completing the current flow.
var ErrUserQuit = errors.New("user quit")

// SaveFunc persists the whole application state. The TUI invokes it after
// every successful mutation; a failure is reported on screen but never aborts
// the session.
type SaveFunc func(ctx context.Context) error

type TUI struct {
	services  *service.Services
	save      SaveFunc
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, save SaveFunc, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, save: save, buildInfo: buildInfo}, nil
}

// LoginFlow runs the authentication screens and returns the logged-in
// configurator. On the very first launch a login with the default credentials
// leads into the registration page; completing it counts as logging in.
func (t *TUI) LoginFlow(ctx context.Context) (*models.Configurator, error) {
	pages := map[string]tea.Model{
		"login":    NewLoginModel(ctx, t.services.Auth, t.save),
		"register": NewRegisterModel(ctx, t.services.Auth, t.save),
	}

	root := NewRootModel(pages, "login", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, ErrUserQuit
	}

	return result.resultConfigurator, nil
}

// MainLoop runs the configuration session for a logged-in configurator. It
// returns logout=true when the session ended with an explicit logout rather
// than a quit.
func (t *TUI) MainLoop(ctx context.Context, configurator *models.Configurator) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.save, configurator)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
